package order

import (
	"reflect"
	"testing"
)

func TestSetQuantityAndRemove(t *testing.T) {
	t.Run("set then overwrite replaces, does not accumulate", func(t *testing.T) {
		o := New()
		o.SetQuantity("Garlic Bread", 2)
		o.SetQuantity("Garlic Bread", 3)

		if got := o.Quantity("Garlic Bread"); got != 3 {
			t.Errorf("Quantity = %d, want 3", got)
		}
		if len(o.Items()) != 1 {
			t.Errorf("len(Items) = %d, want 1", len(o.Items()))
		}
	})

	t.Run("set zero is equivalent to remove", func(t *testing.T) {
		a := New()
		a.SetQuantity("Coffee", 2)
		a.SetQuantity("Coffee", 0)

		b := New()
		b.SetQuantity("Coffee", 2)
		b.Remove("Coffee")

		if !reflect.DeepEqual(a.Items(), b.Items()) {
			t.Errorf("SetQuantity(0) items = %v, Remove items = %v", a.Items(), b.Items())
		}
		if !a.Empty() {
			t.Error("expected order to be empty after SetQuantity(0)")
		}
	})

	t.Run("negative quantity removes too", func(t *testing.T) {
		o := New()
		o.SetQuantity("Coffee", 2)
		o.SetQuantity("Coffee", -1)

		if !o.Empty() {
			t.Error("expected order to be empty after negative quantity")
		}
	})

	t.Run("removing an absent entry is a no-op", func(t *testing.T) {
		o := New()
		o.Remove("Ghost Item")
		o.SetQuantity("Ghost Item", 0)

		if !o.Empty() {
			t.Error("expected order to stay empty")
		}
	})
}

func TestItemsPreserveInsertionOrder(t *testing.T) {
	o := New()
	o.SetQuantity("Soft Drink", 1)
	o.SetQuantity("Garlic Bread", 2)
	o.SetQuantity("Ice Cream", 1)

	// Overwriting keeps the original position.
	o.SetQuantity("Soft Drink", 3)

	want := []Entry{
		{Name: "Soft Drink", Quantity: 3},
		{Name: "Garlic Bread", Quantity: 2},
		{Name: "Ice Cream", Quantity: 1},
	}
	if got := o.Items(); !reflect.DeepEqual(got, want) {
		t.Errorf("Items() = %v, want %v", got, want)
	}

	// Remove and re-add moves the entry to the end.
	o.Remove("Soft Drink")
	o.SetQuantity("Soft Drink", 1)

	items := o.Items()
	if items[len(items)-1].Name != "Soft Drink" {
		t.Errorf("re-added entry should be last, got %v", items)
	}
}

func TestItemsIsSnapshot(t *testing.T) {
	o := New()
	o.SetQuantity("Coffee", 1)

	snapshot := o.Items()
	o.SetQuantity("Coffee", 2)

	if snapshot[0].Quantity != 1 {
		t.Errorf("snapshot mutated: quantity = %d, want 1", snapshot[0].Quantity)
	}
}
