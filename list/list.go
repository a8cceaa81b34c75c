// Package list implements an ordered singly linked list of integers.
//
// A List owns its chain of nodes through the head link only: there is no length field and no
// tail pointer, so length and emptiness are derived by traversal. Split, sort, merge and append
// relink existing nodes instead of copying them. A List is not safe for concurrent use.
package list

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"listops/util"
	"strconv"
	"strings"
)

const (
	Separator        = " -> "
	EmptyListMessage = "List is empty"
)

var (
	ErrEmptyList        = errors.New("list is empty, nothing to delete")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

type Node struct {
	Value int
	next  *Node
}

// Next returns the successor of the node, or nil for the last node.
func (node *Node) Next() *Node {
	return node.next
}

type List struct {
	head *Node
}

// New builds a list holding values in the given order.
func New(values ...int) *List {
	list := &List{}
	var last *Node
	for _, value := range values {
		node := &Node{Value: value}
		if last == nil {
			list.head = node
		} else {
			last.next = node
		}
		last = node
	}
	return list
}

func (list *List) Head() *Node {
	return list.head
}

func (list *List) IsEmpty() bool {
	return list.head == nil
}

func (list *List) Len() int {
	count := 0
	for node := list.head; node != nil; node = node.next {
		count++
	}
	return count
}

func (list *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for node := list.head; node != nil; node = node.next {
			if !yield(node.Value) {
				return
			}
		}
	}
}

func (list *List) Values() []int {
	values := []int{}
	for value := range list.All() {
		values = append(values, value)
	}
	return values
}

// IsSorted reports whether the values are in non-decreasing order.
func (list *List) IsSorted() bool {
	for node := list.head; node != nil && node.next != nil; node = node.next {
		if node.next.Value < node.Value {
			return false
		}
	}
	return true
}

// String renders the values left to right joined by Separator, or EmptyListMessage.
func (list *List) String() string {
	if list.head == nil {
		return EmptyListMessage
	}
	var builder strings.Builder
	for node := list.head; node != nil; node = node.next {
		builder.WriteString(strconv.Itoa(node.Value))
		if node.next != nil {
			builder.WriteString(Separator)
		}
	}
	return builder.String()
}

func (list *List) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, list.String())
	return err
}

func (list *List) last() *Node {
	if list.head == nil {
		return nil
	}
	current := list.head
	for current.next != nil {
		current = current.next
	}
	return current
}

func (list *List) InsertAtBeginning(value int) {
	list.head = &Node{Value: value, next: list.head}
}

func (list *List) InsertAtEnd(value int) {
	node := &Node{Value: value}
	if list.head == nil {
		list.head = node
		return
	}
	list.last().next = node
}

// InsertInSorted keeps a non-decreasing list ordered. The new node goes in front of any nodes
// holding an equal value.
func (list *List) InsertInSorted(value int) {
	node := &Node{Value: value}
	if list.head == nil || list.head.Value >= value {
		node.next = list.head
		list.head = node
		return
	}

	current := list.head
	for current.next != nil && current.next.Value < value {
		current = current.next
	}
	node.next = current.next
	current.next = node
}

func emptyListError() error {
	return &util.ErrorWithCode{
		StatusCode:    util.ERROR_EMPTY_LIST,
		InternalError: ErrEmptyList,
	}
}

func indexOutOfBoundsError(index int) error {
	return &util.ErrorWithCode{
		StatusCode:    util.ERROR_INDEX_OUT_OF_BOUNDS,
		InternalError: fmt.Errorf("%w: %v", ErrIndexOutOfBounds, index),
	}
}

func (list *List) DeleteFirst() error {
	if list.head == nil {
		return emptyListError()
	}
	list.head = list.head.next
	return nil
}

func (list *List) DeleteLast() error {
	if list.head == nil {
		return emptyListError()
	}
	if list.head.next == nil {
		list.head = nil
		return nil
	}

	current := list.head
	for current.next.next != nil {
		current = current.next
	}
	current.next = nil
	return nil
}

// DeleteAtIndex removes the node at the zero-based index. Negative indices and indices past the
// last node leave the list unchanged and return an ErrIndexOutOfBounds error.
func (list *List) DeleteAtIndex(index int) error {
	if list.head == nil {
		return emptyListError()
	}
	if index < 0 {
		return indexOutOfBoundsError(index)
	}
	if index == 0 {
		return list.DeleteFirst()
	}

	current := list.head
	for count := 0; current != nil && count < index-1; count++ {
		current = current.next
	}
	if current == nil || current.next == nil {
		return indexOutOfBoundsError(index)
	}
	current.next = current.next.next
	return nil
}
