package list

// Sort orders the list in place with a stable merge sort.
func (list *List) Sort() {
	list.head = mergeSort(list.head)
}

// MergeSortedLists sorts a and b, then merges their nodes into a new list. Both inputs are left
// empty. On equal values the nodes of a come first.
func MergeSortedLists(a, b *List) *List {
	if a == nil {
		a = &List{}
	}
	if b == nil {
		b = &List{}
	}

	a.Sort()
	b.Sort()

	merged := &List{head: merge(a.head, b.head)}
	a.head, b.head = nil, nil
	return merged
}

func mergeSort(head *Node) *Node {
	if head == nil || head.next == nil {
		return head
	}

	middle := middleOf(head)
	right := middle.next
	middle.next = nil

	return merge(mergeSort(head), mergeSort(right))
}

// middleOf returns the last node of the left half: the middle node of an odd-length chain and
// the node before the midpoint of an even-length one.
func middleOf(head *Node) *Node {
	if head == nil {
		return nil
	}
	slow, fast := head, head
	for fast.next != nil && fast.next.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	return slow
}

// merge combines two non-decreasing chains, taking from a on ties.
func merge(a, b *Node) *Node {
	var sentinel Node
	tail := &sentinel
	for a != nil && b != nil {
		if a.Value <= b.Value {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return sentinel.next
}
