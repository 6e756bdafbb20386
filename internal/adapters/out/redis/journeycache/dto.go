package journeycache

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/traceability"
)

// recordDTO is the cached JSON form of one journey entry.
type recordDTO struct {
	ID                 string    `json:"id"`
	ProductID          string    `json:"productId"`
	OrderID            *string   `json:"orderId,omitempty"`
	Stage              string    `json:"stage"`
	ActorID            string    `json:"actorId"`
	ActorName          string    `json:"actorName"`
	ActorRole          string    `json:"actorRole"`
	LocationName       string    `json:"locationName"`
	LocationAddress    string    `json:"locationAddress"`
	Action             string    `json:"action"`
	Description        string    `json:"description"`
	VerificationStatus string    `json:"verificationStatus"`
	Timestamp          time.Time `json:"timestamp"`
	CreatedAt          time.Time `json:"createdAt"`
}

func fromResponse(r queries.GetProductJourneyQueryResponse) recordDTO {
	var orderID *string
	if r.OrderID != nil {
		s := r.OrderID.String()
		orderID = &s
	}

	return recordDTO{
		ID:                 r.ID.String(),
		ProductID:          r.ProductID.String(),
		OrderID:            orderID,
		Stage:              r.Stage.String(),
		ActorID:            r.ActorID.String(),
		ActorName:          r.ActorName,
		ActorRole:          r.ActorRole,
		LocationName:       r.LocationName,
		LocationAddress:    r.LocationAddress,
		Action:             r.Action,
		Description:        r.Description,
		VerificationStatus: r.VerificationStatus.String(),
		Timestamp:          r.Timestamp,
		CreatedAt:          r.CreatedAt,
	}
}

func (d recordDTO) toResponse() (queries.GetProductJourneyQueryResponse, error) {
	var resp queries.GetProductJourneyQueryResponse
	var err error

	if resp.ID, err = kernel.UUIDFromString(d.ID); err != nil {
		return resp, err
	}
	if resp.ProductID, err = kernel.UUIDFromString(d.ProductID); err != nil {
		return resp, err
	}
	if resp.ActorID, err = kernel.UUIDFromString(d.ActorID); err != nil {
		return resp, err
	}
	if d.OrderID != nil {
		orderID, orderErr := kernel.UUIDFromString(*d.OrderID)
		if orderErr != nil {
			return resp, orderErr
		}
		resp.OrderID = &orderID
	}
	if resp.Stage, err = traceability.ParseStage(d.Stage); err != nil {
		return resp, err
	}
	if resp.VerificationStatus, err = traceability.ParseVerificationStatus(d.VerificationStatus); err != nil {
		return resp, err
	}

	resp.ActorName = d.ActorName
	resp.ActorRole = d.ActorRole
	resp.LocationName = d.LocationName
	resp.LocationAddress = d.LocationAddress
	resp.Action = d.Action
	resp.Description = d.Description
	resp.Timestamp = d.Timestamp.UTC()
	resp.CreatedAt = d.CreatedAt.UTC()
	return resp, nil
}
