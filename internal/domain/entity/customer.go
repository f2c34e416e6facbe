package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a retail account in the territory. The ship-to
// city and state feed the geographic ranking scopes; Name is the join
// key to imported orders, so it is unique.
type Customer struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;unique;not null" json:"name"`
	ContactName   *string        `gorm:"size:255" json:"contact_name,omitempty"`
	Email         *string        `gorm:"size:255" json:"email,omitempty"`
	Phone         *string        `gorm:"size:50" json:"phone,omitempty"`
	ShipAddress   *string        `gorm:"type:text" json:"ship_address,omitempty"`
	ShipCity      string         `gorm:"size:100" json:"ship_city"`
	ShipState     string         `gorm:"size:10;index" json:"ship_state"`
	ShipZip       *string        `gorm:"size:20" json:"ship_zip,omitempty"`
	Notes         *string        `gorm:"type:text" json:"notes,omitempty"`
	LastVisitDate *time.Time     `gorm:"type:date" json:"last_visit_date,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Orders []Order         `gorm:"foreignKey:CustomerID" json:"-"`
	Visits []CustomerVisit `gorm:"foreignKey:CustomerID" json:"visits,omitempty"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// CustomerVisit is one rep visit to an account.
type CustomerVisit struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer_id"`
	VisitDate  time.Time      `gorm:"type:date;not null" json:"visit_date"`
	Notes      *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new visit
func (v *CustomerVisit) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CustomerVisit model
func (CustomerVisit) TableName() string {
	return "customer_visits"
}
