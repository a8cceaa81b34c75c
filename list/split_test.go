package list

import (
	"slices"
)

func (listSuite *listTestSuite) TestFrontBackSplitOdd() {
	list := New(2, 3, 5, 7, 11)
	front, back := list.FrontBackSplit()
	listSuite.requireValues(front, 2, 3, 5)
	listSuite.requireValues(back, 7, 11)
	listSuite.requireValues(list)
}

func (listSuite *listTestSuite) TestFrontBackSplitEven() {
	list := New(1, 2, 3, 4)
	first, third := list.Head(), list.Head().Next().Next()
	front, back := list.FrontBackSplit()
	listSuite.requireValues(front, 1, 2)
	listSuite.requireValues(back, 3, 4)
	listSuite.Same(first, front.Head(), "nodes are relinked, not copied")
	listSuite.Same(third, back.Head(), "nodes are relinked, not copied")
}

func (listSuite *listTestSuite) TestFrontBackSplitShort() {
	front, back := (&List{}).FrontBackSplit()
	listSuite.requireValues(front)
	listSuite.requireValues(back)

	front, back = New(8).FrontBackSplit()
	listSuite.requireValues(front, 8)
	listSuite.requireValues(back)

	front, back = New(8, 9).FrontBackSplit()
	listSuite.requireValues(front, 8)
	listSuite.requireValues(back, 9)
}

func (listSuite *listTestSuite) TestFrontBackSplitRoundTrip() {
	for count := 0; count < 40; count++ {
		values := listSuite.randomValues(count)
		front, back := New(values...).FrontBackSplit()
		listSuite.Equal((count+1)/2, front.Len(), "front length for %v nodes", count)
		listSuite.Equal(count/2, back.Len(), "back length for %v nodes", count)

		front.Append(back)
		listSuite.Equal(slices.Clone(values), front.Values())
		listSuite.requireValues(back)
	}
}

func (listSuite *listTestSuite) TestAppend() {
	list := &List{}
	list.Append(New(1, 2))
	listSuite.requireValues(list, 1, 2)

	list.Append(nil)
	list.Append(&List{})
	listSuite.requireValues(list, 1, 2)

	list.Append(list)
	listSuite.requireValues(list, 1, 2)

	other := New(3)
	list.Append(other)
	listSuite.requireValues(list, 1, 2, 3)
	listSuite.requireValues(other)
}
