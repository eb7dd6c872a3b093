package models

import "time"

// Rating is an append-only 1..5 score for a product. There is no update or
// delete path; averages are always recomputed from the full history.
type Rating struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID int64     `gorm:"column:product_id;not null;index"`
	Rating    int       `gorm:"column:rating;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
