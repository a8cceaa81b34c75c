package list

import (
	"slices"
)

func (listSuite *listTestSuite) TestSort() {
	list := New(9, 3, 7, 1)
	list.Sort()
	listSuite.requireValues(list, 1, 3, 7, 9)

	list.Sort()
	listSuite.requireValues(list, 1, 3, 7, 9)

	empty := &List{}
	empty.Sort()
	listSuite.requireValues(empty)

	single := New(4)
	single.Sort()
	listSuite.requireValues(single, 4)
}

func (listSuite *listTestSuite) TestSortMatchesSlices() {
	for count := 0; count < 60; count++ {
		values := listSuite.randomValues(count)
		list := New(values...)
		list.Sort()

		sorted := slices.Clone(values)
		slices.Sort(sorted)
		listSuite.Require().Equal(sorted, list.Values(), "sorting %v", values)
		listSuite.Require().True(list.IsSorted())
	}
}

func (listSuite *listTestSuite) TestSortIsStable() {
	list := New(2, 1, 2, 0, 2)
	var twos []*Node
	for node := list.Head(); node != nil; node = node.Next() {
		if node.Value == 2 {
			twos = append(twos, node)
		}
	}

	list.Sort()
	listSuite.requireValues(list, 0, 1, 2, 2, 2)

	var sortedTwos []*Node
	for node := list.Head(); node != nil; node = node.Next() {
		if node.Value == 2 {
			sortedTwos = append(sortedTwos, node)
		}
	}
	listSuite.Equal(twos, sortedTwos)
}

func (listSuite *listTestSuite) TestMiddleOf() {
	listSuite.Nil(middleOf(nil))
	for count := 1; count < 10; count++ {
		values := make([]int, count)
		for i := range values {
			values[i] = i
		}
		middle := middleOf(New(values...).Head())
		listSuite.Equal((count-1)/2, middle.Value, "middle of %v nodes", count)
	}
}

func (listSuite *listTestSuite) TestMergeSortedLists() {
	a := New(9, 3, 7, 1)
	b := New(8, 2, 6, 4)
	merged := MergeSortedLists(a, b)
	listSuite.requireValues(merged, 1, 2, 3, 4, 6, 7, 8, 9)
	listSuite.requireValues(a)
	listSuite.requireValues(b)
}

func (listSuite *listTestSuite) TestMergeSortedListsEdgeCases() {
	listSuite.requireValues(MergeSortedLists(nil, nil))
	listSuite.requireValues(MergeSortedLists(&List{}, New(3, 1)), 1, 3)
	listSuite.requireValues(MergeSortedLists(New(3, 1), nil), 1, 3)
	listSuite.requireValues(MergeSortedLists(New(5, 5), New(5)), 5, 5, 5)
}

func (listSuite *listTestSuite) TestMergeFavorsFirstListOnTies() {
	a := New(1, 2)
	b := New(2, 1)
	firstA, secondA := a.Head(), a.Head().Next()
	secondB, firstB := b.Head(), b.Head().Next()

	merged := MergeSortedLists(a, b)
	var nodes []*Node
	for node := merged.Head(); node != nil; node = node.Next() {
		nodes = append(nodes, node)
	}
	listSuite.Equal([]*Node{firstA, firstB, secondA, secondB}, nodes)
}

func (listSuite *listTestSuite) TestMergeSortedListsMatchesSlices() {
	for round := 0; round < 20; round++ {
		valuesA := listSuite.randomValues(round)
		valuesB := listSuite.randomValues(20 - round)
		merged := MergeSortedLists(New(valuesA...), New(valuesB...))

		expected := append(slices.Clone(valuesA), valuesB...)
		slices.Sort(expected)
		listSuite.Require().Equal(expected, merged.Values())
	}
}
