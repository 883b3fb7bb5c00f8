package model

import "time"

type Company struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Contact   *string   `db:"contact" json:"contact"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
