package demo

import (
	"bytes"
	"errors"
	"fmt"
	"listops/list"
	"strconv"
	"strings"
)

type transcript struct {
	buffer *bytes.Buffer
}

func (t *transcript) line(format string, v ...interface{}) {
	fmt.Fprintf(t.buffer, format+"\n", v...)
}

func (t *transcript) list(l *list.List) {
	_ = l.Print(t.buffer)
}

// deletion records a failed delete in the transcript. Only empty-list and out-of-bounds
// conditions are reported this way; anything else is returned.
func (t *transcript) deletion(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, list.ErrEmptyList) || errors.Is(err, list.ErrIndexOutOfBounds) {
		t.line("%v", err)
		return nil
	}
	return err
}

type scenario struct {
	Name       string
	Title      string
	NeedsInput bool
	run        func(out *transcript, values []int) (*list.List, error)
}

var scenarios = []scenario{
	{
		Name:  "insert-delete",
		Title: "Demonstrating Insertion and Deletion operations:",
		run:   insertDeleteScenario,
	},
	{
		Name:  "front-back-split",
		Title: "Demonstrating FrontBackSplit operation:",
		run:   frontBackSplitScenario,
	},
	{
		Name:  "merge",
		Title: "Demonstrating Merge operation:",
		run:   mergeScenario,
	},
	{
		Name:       "input-sort",
		Title:      "Sorting input values:",
		NeedsInput: true,
		run:        inputSortScenario,
	},
	{
		Name:       "input-split",
		Title:      "Splitting input values:",
		NeedsInput: true,
		run:        inputSplitScenario,
	},
	{
		Name:       "input-sorted-insert",
		Title:      "Inserting input values in sorted positions:",
		NeedsInput: true,
		run:        inputSortedInsertScenario,
	},
	{
		Name:       "input-delete",
		Title:      "Deleting from input values:",
		NeedsInput: true,
		run:        inputDeleteScenario,
	},
}

// ScenarioNames lists every known scenario in the order transcripts are written.
func ScenarioNames() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	return names
}

func joinValues(values []int) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = strconv.Itoa(value)
	}
	return strings.Join(parts, ", ")
}

func insertDeleteScenario(out *transcript, _ []int) (*list.List, error) {
	l := &list.List{}

	for _, value := range []int{5, 3, 1} {
		l.InsertAtBeginning(value)
	}
	out.line("After inserting 5, 3, 1 at beginning:")
	out.list(l)

	for _, value := range []int{7, 9} {
		l.InsertAtEnd(value)
	}
	out.line("After inserting 7, 9 at end:")
	out.list(l)

	for _, value := range []int{4, 8, 2} {
		l.InsertInSorted(value)
	}
	out.line("After inserting 4, 8, 2 in sorted positions:")
	out.list(l)

	if err := out.deletion(l.DeleteFirst()); err != nil {
		return nil, err
	}
	out.line("After deleting first node:")
	out.list(l)

	if err := out.deletion(l.DeleteLast()); err != nil {
		return nil, err
	}
	out.line("After deleting last node:")
	out.list(l)

	if err := out.deletion(l.DeleteAtIndex(2)); err != nil {
		return nil, err
	}
	out.line("After deleting node at index 2:")
	out.list(l)

	return l, nil
}

func splitTranscript(out *transcript, l *list.List) *list.List {
	out.line("Original list:")
	out.list(l)

	front, back := l.FrontBackSplit()
	out.line("Front half:")
	out.list(front)
	out.line("Back half:")
	out.list(back)

	front.Append(back)
	return front
}

func frontBackSplitScenario(out *transcript, _ []int) (*list.List, error) {
	return splitTranscript(out, list.New(2, 3, 5, 7, 11)), nil
}

func mergeScenario(out *transcript, _ []int) (*list.List, error) {
	listA := list.New(9, 3, 7, 1)
	listB := list.New(8, 2, 6, 4)

	out.line("List A (unsorted):")
	out.list(listA)
	out.line("List B (unsorted):")
	out.list(listB)

	merged := list.MergeSortedLists(listA, listB)
	out.line("Merged list (sorted):")
	out.list(merged)
	return merged, nil
}

func inputSortScenario(out *transcript, values []int) (*list.List, error) {
	l := list.New(values...)
	out.line("Input list:")
	out.list(l)

	l.Sort()
	out.line("Sorted list:")
	out.list(l)
	return l, nil
}

func inputSplitScenario(out *transcript, values []int) (*list.List, error) {
	return splitTranscript(out, list.New(values...)), nil
}

func inputSortedInsertScenario(out *transcript, values []int) (*list.List, error) {
	l := &list.List{}
	for _, value := range values {
		l.InsertInSorted(value)
	}
	out.line("After inserting %v in sorted positions:", joinValues(values))
	out.list(l)
	return l, nil
}

func inputDeleteScenario(out *transcript, values []int) (*list.List, error) {
	l := list.New(values...)
	out.line("Input list:")
	out.list(l)

	middle := len(values) / 2
	if err := out.deletion(l.DeleteAtIndex(middle)); err != nil {
		return nil, err
	}
	out.line("After deleting node at index %v:", middle)
	out.list(l)

	if err := out.deletion(l.DeleteFirst()); err != nil {
		return nil, err
	}
	out.line("After deleting first node:")
	out.list(l)

	if err := out.deletion(l.DeleteLast()); err != nil {
		return nil, err
	}
	out.line("After deleting last node:")
	out.list(l)
	return l, nil
}
