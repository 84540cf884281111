// Package dto содержит JSON-представления доменных сущностей, общие для
// всех REST-хендлеров. Имена полей зафиксированы контрактом клиента,
// смешение snake_case и camelCase историческое.
package dto

import (
	"time"

	"swiftdrop/internal/entities"
)

type Parcel struct {
	ID                   int64      `json:"id"`
	TrackingID           string     `json:"tracking_id"`
	Title                string     `json:"title"`
	CreatedBy            string     `json:"created_by"`
	Cost                 string     `json:"cost"`
	OriginWarehouse      string     `json:"origin_warehouse"`
	DestinationWarehouse string     `json:"destination_warehouse"`
	DeliveryStatus       string     `json:"delivery_status"`
	ParcelStatus         string     `json:"parcelStatus"`
	PaymentStatus        string     `json:"payment_status"`
	CashoutStatus        string     `json:"cashout_status"`
	RiderID              *int64     `json:"riderId,omitempty"`
	RiderName            string     `json:"riderName,omitempty"`
	RiderEmail           string     `json:"riderEmail,omitempty"`
	RiderContact         string     `json:"riderContact,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	PickedAt             *time.Time `json:"picked_at,omitempty"`
	DeliveredAt          *time.Time `json:"delivered_at,omitempty"`
	CashedOutAt          *time.Time `json:"cashed_out_at,omitempty"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func NewParcel(p *entities.Parcel) Parcel {
	return Parcel{
		ID:                   p.ID,
		TrackingID:           p.TrackingID,
		Title:                p.Title,
		CreatedBy:            p.CreatedBy,
		Cost:                 p.Cost.String(),
		OriginWarehouse:      p.OriginWarehouse,
		DestinationWarehouse: p.DestinationWarehouse,
		DeliveryStatus:       p.DeliveryStatus.String(),
		ParcelStatus:         p.ParcelStatus.String(),
		PaymentStatus:        p.PaymentStatus.String(),
		CashoutStatus:        p.CashoutStatus.String(),
		RiderID:              p.RiderID,
		RiderName:            p.RiderName,
		RiderEmail:           p.RiderEmail,
		RiderContact:         p.RiderContact,
		CreatedAt:            p.CreatedAt,
		PickedAt:             p.PickedAt,
		DeliveredAt:          p.DeliveredAt,
		CashedOutAt:          p.CashedOutAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func NewParcelList(parcels []entities.Parcel) []Parcel {
	list := make([]Parcel, 0, len(parcels))
	for i := range parcels {
		list = append(list, NewParcel(&parcels[i]))
	}
	return list
}

type Rider struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	Warehouse string    `json:"warehouse"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewRider(r *entities.Rider) Rider {
	return Rider{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Contact:   r.Contact,
		Warehouse: r.Warehouse,
		Status:    r.Status.String(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func NewRiderList(riders []entities.Rider) []Rider {
	list := make([]Rider, 0, len(riders))
	for i := range riders {
		list = append(list, NewRider(&riders[i]))
	}
	return list
}

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUser(u *entities.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func NewUserList(users []entities.User) []User {
	list := make([]User, 0, len(users))
	for i := range users {
		list = append(list, NewUser(&users[i]))
	}
	return list
}

type Payment struct {
	ID            int64     `json:"id"`
	ParcelID      int64     `json:"parcelId"`
	Amount        string    `json:"amount"`
	TransactionID string    `json:"transactionId"`
	PayerEmail    string    `json:"payerEmail"`
	Method        string    `json:"method"`
	PaidAt        time.Time `json:"paidAt"`
}

func NewPayment(p *entities.Payment) Payment {
	return Payment{
		ID:            p.ID,
		ParcelID:      p.ParcelID,
		Amount:        p.Amount.String(),
		TransactionID: p.TransactionID,
		PayerEmail:    p.PayerEmail,
		Method:        p.Method,
		PaidAt:        p.PaidAt,
	}
}

func NewPaymentList(payments []entities.Payment) []Payment {
	list := make([]Payment, 0, len(payments))
	for i := range payments {
		list = append(list, NewPayment(&payments[i]))
	}
	return list
}

type TrackingEvent struct {
	ID         int64     `json:"id"`
	TrackingID string    `json:"tracking_id"`
	Status     string    `json:"status"`
	Note       string    `json:"note,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

func NewTrackingEvent(e *entities.TrackingEvent) TrackingEvent {
	return TrackingEvent{
		ID:         e.ID,
		TrackingID: e.TrackingID,
		Status:     e.Status,
		Note:       e.Note,
		RecordedAt: e.RecordedAt,
	}
}

func NewTrackingEventList(events []entities.TrackingEvent) []TrackingEvent {
	list := make([]TrackingEvent, 0, len(events))
	for i := range events {
		list = append(list, NewTrackingEvent(&events[i]))
	}
	return list
}

type DeliveryStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

func NewDeliveryStatusCountList(counts []entities.DeliveryStatusCount) []DeliveryStatusCount {
	list := make([]DeliveryStatusCount, 0, len(counts))
	for _, c := range counts {
		list = append(list, DeliveryStatusCount{
			Status: c.Status.String(),
			Count:  c.Count,
		})
	}
	return list
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
