package rider

import "swiftdrop/internal/entities"

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}
	return &entities.Rider{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Contact:   r.Contact,
		Warehouse: r.Warehouse,
		Status:    entities.RiderStatusType(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func ToDomainList(riderModels []RiderDB) []entities.Rider {
	riderEntities := make([]entities.Rider, 0, len(riderModels))
	for i := range riderModels {
		riderEntities = append(riderEntities, *ToDomain(&riderModels[i]))
	}
	return riderEntities
}

func FromDomainModify(r *entities.RiderModify) *RiderModifyDB {
	if r == nil {
		return nil
	}
	riderModifyDB := &RiderModifyDB{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Contact:   r.Contact,
		Warehouse: r.Warehouse,
	}

	if r.Status != nil {
		status := string(*r.Status)
		riderModifyDB.Status = &status
	}

	return riderModifyDB
}
