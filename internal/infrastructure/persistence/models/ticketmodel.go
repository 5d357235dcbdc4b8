package models

// TicketModel is the GORM model for tickets. TopicID is a plain nullable
// column; referential integrity with topics is managed by the application,
// so topic deletion can null it in bulk without a database constraint.
type TicketModel struct {
	ID                uint    `gorm:"primaryKey;autoIncrement"`
	RequesterID       uint    `gorm:"index:idx_tickets_requester_id;not null"`
	RequesterName     *string `gorm:"type:varchar(255)"`
	AssigneeID        *uint   `gorm:"index:idx_tickets_assignee_id"`
	TopicID           *uint   `gorm:"index:idx_tickets_topic_id"`
	TopicNameSnapshot string  `gorm:"type:varchar(100);not null"`
	Priority          string  `gorm:"type:varchar(20);not null"`
	Status            string  `gorm:"type:varchar(20);index:idx_tickets_status;not null"`
	Description       string  `gorm:"type:text;not null"`
	CreatedAt         int64   `gorm:"autoCreateTime:milli"`
	UpdatedAt         int64   `gorm:"autoUpdateTime:milli"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
