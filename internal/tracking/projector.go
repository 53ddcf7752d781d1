package tracking

import (
	"github.com/lgpharma/herbal-shop-backend/internal/order"
)

// Stages is the fixed delivery sequence. Cancelled sits outside it and
// is rendered distinctly.
var Stages = []order.Status{
	order.StatusPlaced,
	order.StatusPacked,
	order.StatusShipped,
	order.StatusOutForDelivery,
	order.StatusDelivered,
}

var progressPercent = map[order.Status]int{
	order.StatusPlaced:         10,
	order.StatusPacked:         35,
	order.StatusShipped:        60,
	order.StatusOutForDelivery: 85,
	order.StatusDelivered:      100,
}

// Stage is one row of the delivery timeline.
type Stage struct {
	Status    order.Status `json:"status"`
	Completed bool         `json:"completed"`
	Current   bool         `json:"current"`
	Date      string       `json:"date,omitempty"`
	Time      string       `json:"time,omitempty"`
	Location  string       `json:"location,omitempty"`
}

// TimelineView is the projected tracking state for one order.
type TimelineView struct {
	OrderID         string       `json:"orderId"`
	TrackingID      string       `json:"trackingId"`
	DeliveryPartner string       `json:"deliveryPartner"`
	Status          order.Status `json:"status"`
	Cancelled       bool         `json:"cancelled"`
	Percent         int          `json:"percent"`
	Stages          []Stage      `json:"stages"`
}

// Project derives the five-stage timeline view from an order. It is a
// pure function: the same order always yields the same view, and the
// stage order never changes.
func Project(ord order.Order) TimelineView {
	view := TimelineView{
		OrderID:         ord.ID,
		TrackingID:      ord.TrackingID,
		DeliveryPartner: ord.DeliveryPartner,
		Status:          ord.Status,
		Cancelled:       ord.Status == order.StatusCancelled,
		Percent:         progressPercent[ord.Status],
		Stages:          make([]Stage, 0, len(Stages)),
	}

	current := stageIndex(ord.Status)
	for i, status := range Stages {
		stage := Stage{
			Status:    status,
			Completed: current >= 0 && i <= current,
			Current:   current >= 0 && i == current,
		}
		if entry, ok := timelineEntry(ord, status); ok {
			stage.Date = entry.Date
			stage.Time = entry.Time
			stage.Location = entry.Location
		} else {
			// fallback annotations exist only at the ends of the sequence
			switch status {
			case order.StatusPlaced:
				stage.Date = ord.Date
			case order.StatusDelivered:
				stage.Date = ord.EstimatedDelivery
			}
		}
		view.Stages = append(view.Stages, stage)
	}
	return view
}

func stageIndex(s order.Status) int {
	for i, status := range Stages {
		if status == s {
			return i
		}
	}
	return -1
}

func timelineEntry(ord order.Order, s order.Status) (order.TimelineEntry, bool) {
	for _, entry := range ord.Timeline {
		if entry.Status == s {
			return entry, true
		}
	}
	return order.TimelineEntry{}, false
}
