package department

import "time"

type Department struct {
	ID        string
	Name      string
	Code      string
	HeadID    *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Designation struct {
	ID           string
	Title        string
	Level        *int
	DepartmentID *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
