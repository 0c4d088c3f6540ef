// Package referencerepo answers existence checks against the caterer and airport
// reference tables. Those tables are maintained by back-office tooling; this
// service only reads them.
package referencerepo

type CatererDTO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"size:255;not null"`
	Active bool   `gorm:"not null;default:true"`
}

func (CatererDTO) TableName() string {
	return "caterers"
}

type AirportDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Code string `gorm:"size:8;not null;uniqueIndex"`
	Name string `gorm:"size:255"`
}

func (AirportDTO) TableName() string {
	return "airports"
}
