package list

// FrontBackSplit moves the nodes of the list into a front and a back list and leaves the
// receiver empty. The front keeps the extra node of an odd-length list. A list with fewer than
// two nodes goes entirely to the front.
func (list *List) FrontBackSplit() (front, back *List) {
	head := list.head
	list.head = nil

	front, back = &List{head: head}, &List{}
	if head == nil || head.next == nil {
		return front, back
	}

	middle := middleOf(head)
	back.head = middle.next
	middle.next = nil
	return front, back
}

// Append relinks the nodes of other after the last node of the list and leaves other empty.
func (list *List) Append(other *List) {
	if other == nil || other == list || other.head == nil {
		return
	}
	if list.head == nil {
		list.head = other.head
	} else {
		list.last().next = other.head
	}
	other.head = nil
}
