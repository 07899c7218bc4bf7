package model

// Item is a named meat type managed by admins. Orders reference items by name,
// not id, so renaming an item does not rewrite historical orders.
type Item struct {
	ID   string
	Name string
}

// Waiter is a named staff member selectable for indoor orders. Referenced by
// name from orders, same weak-reference rule as Item.
type Waiter struct {
	ID   string
	Name string
}
