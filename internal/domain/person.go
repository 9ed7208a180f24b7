package domain

import "time"

type Person struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	CardUID   string    `json:"cardUID"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *Person) FullName() string {
	return p.FirstName + p.LastName
}
