package parcel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"swiftdrop/internal/entities"
)

func ToDomain(p *ParcelDB) (*entities.Parcel, error) {
	if p == nil {
		return nil, nil
	}

	cost, err := decimal.NewFromString(p.Cost)
	if err != nil {
		return nil, fmt.Errorf("parse parcel cost %q: %w", p.Cost, err)
	}

	parcelEntity := &entities.Parcel{
		ID:                   p.ID,
		TrackingID:           p.TrackingID,
		Title:                p.Title,
		CreatedBy:            p.CreatedBy,
		Cost:                 cost,
		OriginWarehouse:      p.OriginWarehouse,
		DestinationWarehouse: p.DestinationWarehouse,
		DeliveryStatus:       entities.DeliveryStatusType(p.DeliveryStatus),
		ParcelStatus:         entities.ParcelStatusType(p.ParcelStatus),
		PaymentStatus:        entities.PaymentStatusType(p.PaymentStatus),
		CashoutStatus:        entities.CashoutStatusType(p.CashoutStatus),
		RiderID:              p.RiderID,
		CreatedAt:            p.CreatedAt,
		PickedAt:             p.PickedAt,
		DeliveredAt:          p.DeliveredAt,
		CashedOutAt:          p.CashedOutAt,
		UpdatedAt:            p.UpdatedAt,
	}

	if p.RiderName != nil {
		parcelEntity.RiderName = *p.RiderName
	}
	if p.RiderEmail != nil {
		parcelEntity.RiderEmail = *p.RiderEmail
	}
	if p.RiderContact != nil {
		parcelEntity.RiderContact = *p.RiderContact
	}

	return parcelEntity, nil
}

func ToDomainList(parcelModels []ParcelDB) ([]entities.Parcel, error) {
	parcelEntities := make([]entities.Parcel, 0, len(parcelModels))
	for i := range parcelModels {
		parcelEntity, err := ToDomain(&parcelModels[i])
		if err != nil {
			return nil, err
		}
		parcelEntities = append(parcelEntities, *parcelEntity)
	}
	return parcelEntities, nil
}

func FromDomainModify(p *entities.ParcelModify) *ParcelModifyDB {
	if p == nil {
		return nil
	}
	parcelModifyDB := &ParcelModifyDB{
		ID:                   p.ID,
		Title:                p.Title,
		CreatedBy:            p.CreatedBy,
		OriginWarehouse:      p.OriginWarehouse,
		DestinationWarehouse: p.DestinationWarehouse,
	}

	if p.Cost != nil {
		cost := p.Cost.String()
		parcelModifyDB.Cost = &cost
	}

	return parcelModifyDB
}
