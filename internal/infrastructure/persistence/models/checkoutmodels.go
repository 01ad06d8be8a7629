package models

type PilotModel struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:30;not null"`
	FirstName string `gorm:"size:50;not null;default:'';index:idx_pilots_name,priority:2"`
	LastName  string `gorm:"size:50;not null;default:'';index:idx_pilots_name,priority:1"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PilotModel) TableName() string {
	return "pilots"
}

type AirstripModel struct {
	ID        uint   `gorm:"primaryKey"`
	Ident     string `gorm:"uniqueIndex;size:10;not null"`
	Name      string `gorm:"size:100;not null;index"`
	IsBase    bool   `gorm:"not null;default:false;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AirstripModel) TableName() string {
	return "airstrips"
}

// AirstripBaseModel attaches an airstrip to a base. Both columns reference
// airstrips.id; integrity is kept by the repository.
type AirstripBaseModel struct {
	AirstripID uint `gorm:"primaryKey;autoIncrement:false"`
	BaseID     uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (AirstripBaseModel) TableName() string {
	return "airstrip_bases"
}

type AircraftTypeModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:50;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AircraftTypeModel) TableName() string {
	return "aircraft_types"
}

type CheckoutModel struct {
	ID             uint  `gorm:"primaryKey"`
	PilotID        uint  `gorm:"not null;uniqueIndex:idx_checkouts_triple,priority:1"`
	AirstripID     uint  `gorm:"not null;uniqueIndex:idx_checkouts_triple,priority:2;index"`
	AircraftTypeID uint  `gorm:"not null;uniqueIndex:idx_checkouts_triple,priority:3;index"`
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
}

func (CheckoutModel) TableName() string {
	return "checkouts"
}

// CheckoutRow is a checkout joined with its pilot, airstrip and aircraft
// type. Missing-checkout queries fill it with ID 0.
type CheckoutRow struct {
	ID             uint
	PilotID        uint
	Username       string
	FirstName      string
	LastName       string
	AirstripID     uint
	Ident          string
	AirstripName   string
	IsBase         bool
	AircraftTypeID uint
	AircraftType   string
}
