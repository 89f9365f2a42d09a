// Package conopsrepo persists CONOPS dossiers and their declared air risks.
package conopsrepo

import (
	"starwings/internal/core/domain/model/conops"
)

// ConopsDTO represents the database structure for persisting dossiers.
type ConopsDTO struct {
	ID            int                `gorm:"primaryKey;autoIncrement:false"`
	Name          string             `gorm:"type:varchar(255);not null"`
	StartingPoint string             `gorm:"type:varchar(255);not null"`
	EndPoint      string             `gorm:"type:varchar(255);not null"`
	CrossRoad     string             `gorm:"type:varchar(255);not null"`
	ExclusionZone string             `gorm:"type:varchar(255);not null"`
	GRC           int                `gorm:"type:int;not null"`
	ARC           int                `gorm:"type:int;not null"`
	Activated     bool               `gorm:"not null"`
	AirRisks      []ConopsAirRiskDTO `gorm:"foreignKey:ConopsID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "conops".
func (ConopsDTO) TableName() string {
	return "conops"
}

// ConopsAirRiskDTO is one declared air risk of a dossier, kept in
// declaration order.
type ConopsAirRiskDTO struct {
	ConopsID int    `gorm:"primaryKey;autoIncrement:false"`
	Position int    `gorm:"primaryKey;autoIncrement:false"`
	Name     string `gorm:"type:varchar(255);not null"`
	RiskType int    `gorm:"type:smallint;not null"`
}

// TableName overrides GORM's default naming to use "conops_air_risks".
func (ConopsAirRiskDTO) TableName() string {
	return "conops_air_risks"
}

// fromDomain converts a dossier aggregate to its database representation.
func fromDomain(aggregate *conops.Conops) ConopsDTO {
	domainRisks := aggregate.AirRisks()
	risks := make([]ConopsAirRiskDTO, 0, len(domainRisks))
	for i, risk := range domainRisks {
		risks = append(risks, ConopsAirRiskDTO{
			ConopsID: aggregate.ID(),
			Position: i,
			Name:     risk.Name(),
			RiskType: int(risk.RiskType()),
		})
	}

	return ConopsDTO{
		ID:            aggregate.ID(),
		Name:          aggregate.Name(),
		StartingPoint: aggregate.StartingPoint(),
		EndPoint:      aggregate.EndPoint(),
		CrossRoad:     aggregate.CrossRoad(),
		ExclusionZone: aggregate.ExclusionZone(),
		GRC:           aggregate.GRC(),
		ARC:           aggregate.ARC(),
		Activated:     aggregate.Activated(),
		AirRisks:      risks,
	}
}

// toDomain converts a database DTO to a dossier aggregate. Catalog air risks
// are stored unvalidated; validation marks live on flight copies only.
func toDomain(dto ConopsDTO) (*conops.Conops, error) {
	risks := make([]conops.AirRisk, 0, len(dto.AirRisks))
	for _, riskDTO := range dto.AirRisks {
		risk, err := conops.RestoreAirRisk(riskDTO.Name, conops.RiskType(riskDTO.RiskType), false)
		if err != nil {
			return nil, err
		}
		risks = append(risks, risk)
	}

	return conops.RestoreConops(
		dto.ID,
		dto.Name, dto.StartingPoint, dto.EndPoint, dto.CrossRoad, dto.ExclusionZone,
		risks,
		dto.GRC, dto.ARC,
		dto.Activated,
	)
}
