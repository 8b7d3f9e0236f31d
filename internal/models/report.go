package models

import "time"

// MonthlyRevenue is one brand's summed revenue for a YYYY-MM month key.
type MonthlyRevenue struct {
	Month   string  `gorm:"column:month" json:"month"`
	Revenue float64 `gorm:"column:revenue" json:"revenue"`
}

type ProductRevenue struct {
	ProductID   uint    `gorm:"column:product_id" json:"product_id"`
	ProductName string  `gorm:"column:product_name" json:"product_name"`
	Quantity    int64   `gorm:"column:quantity" json:"quantity"`
	Revenue     float64 `gorm:"column:revenue" json:"revenue"`
}

type VisitCount struct {
	UserID   uint   `gorm:"column:user_id" json:"user_id"`
	Username string `gorm:"column:username" json:"username"`
	Zone     string `gorm:"column:zone" json:"zone"`
	Visits   int64  `gorm:"column:visits" json:"visits"`
}

// ProspectionFilter narrows the admin recap table. Zero values impose no constraint.
type ProspectionFilter struct {
	From         *time.Time
	To           *time.Time
	CommercialID uint
	Zone         string
	Specialty    string
}
