package model

import "time"

type Item struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
}

// ItemInput is the create/update payload: every field except the id.
type ItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type User struct {
	ID        int    `json:"id" db:"id"`
	FirstName string `json:"firstname" db:"firstname"`
	LastName  string `json:"lastname" db:"lastname"`
	Email     string `json:"email" db:"email"`
	Password  string `json:"password" db:"password"`
}

type UserInput struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Order references a user and an item by id only. The references are not
// checked on write and deleting either side leaves them dangling.
type Order struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	ItemID    int       `json:"item_id" db:"item_id"`
	OrderDate time.Time `json:"order_date" db:"order_date"`
	Status    string    `json:"status" db:"status"`
}

// OrderInput carries order_date as a YYYY-MM-DD string; it is parsed to a
// midnight timestamp before it reaches storage.
type OrderInput struct {
	UserID    int    `json:"user_id"`
	ItemID    int    `json:"item_id"`
	OrderDate string `json:"order_date"`
	Status    string `json:"status"`
}
