package database

// ItemModel é o model GORM para itens de coleta
type ItemModel struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Image string `gorm:"type:varchar(255);not null"`
	Title string `gorm:"type:varchar(255);not null;uniqueIndex"`
}

func (ItemModel) TableName() string {
	return "items"
}

// PointModel é o model GORM para pontos de coleta
type PointModel struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	Image     string  `gorm:"type:varchar(255);not null"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Email     string  `gorm:"type:varchar(255);not null"`
	Whatsapp  string  `gorm:"type:varchar(255);not null"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	City      string  `gorm:"type:varchar(255);not null;index:idx_points_city_uf"`
	UF        string  `gorm:"column:uf;type:varchar(2);not null;index:idx_points_city_uf"`
}

func (PointModel) TableName() string {
	return "points"
}

// PointItemModel é a tabela de associação entre pontos e itens
type PointItemModel struct {
	ID      uint `gorm:"primaryKey;autoIncrement"`
	PointID uint `gorm:"not null;index"`
	ItemID  uint `gorm:"not null;index"`
}

func (PointItemModel) TableName() string {
	return "point_items"
}
