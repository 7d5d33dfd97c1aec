package model

// AffiliationModel mirrors the 'affiliations' table.
type AffiliationModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (AffiliationModel) TableName() string {
	return "affiliations"
}

// CharacterModel mirrors the 'characters' table. AffiliationID references affiliations.id.
type CharacterModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"type:varchar(255);not null"`
	AffiliationID int64   `gorm:"not null;index"`
	LifePoints    int32   `gorm:"not null"`
	Size          float64 `gorm:"not null"`
	Age           int     `gorm:"not null"`
	Weight        float64 `gorm:"not null"`
	ImageURL      string  `gorm:"column:image_url;type:text;not null"`

	Affiliation *AffiliationModel `gorm:"foreignKey:AffiliationID"`
}

// TableName explicitly sets the table name for GORM.
func (CharacterModel) TableName() string {
	return "characters"
}
