package model

import "github.com/google/uuid"

// BaseEntity carries the identifier shared by every persisted aggregate.
type BaseEntity struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
}
