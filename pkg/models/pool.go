package models

// Pool is a named cause that receives pooled donations. Pools are seeded
// out of band (cmd/seed) and are never created through the API.
type Pool struct {
	ID           string  `gorm:"primary_key;type:varchar(50)" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Description  string  `gorm:"type:text" json:"description"`
	TotalDonated float64 `gorm:"default:0" json:"total_donated"`
	DonorCount   int     `gorm:"default:0" json:"donor_count"`
}

func (Pool) TableName() string {
	return "pools"
}
