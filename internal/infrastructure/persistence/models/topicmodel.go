package models

// TopicModel is the GORM model for topics. The unique index on name is the
// authority for name uniqueness across active and inactive topics.
type TopicModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);uniqueIndex:uidx_topics_name;not null"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`
}

func (TopicModel) TableName() string {
	return "topics"
}
