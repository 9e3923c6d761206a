package dto

import "time"

type LegPayload struct {
	Flight      string    `json:"flight"`
	Airline     string    `json:"airline"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	ETA         time.Time `json:"eta"`
	Status      string    `json:"status,omitempty"`
}

type CreateGuestRequest struct {
	Name  string       `json:"name"`
	Phone string       `json:"phone"`
	Legs  []LegPayload `json:"legs"`
}

type ReplaceLegsRequest struct {
	Legs []LegPayload `json:"legs"`
}

type LegResponse struct {
	LegID       int64     `json:"leg_id"`
	LegOrder    int       `json:"leg_order"`
	Flight      string    `json:"flight"`
	Airline     string    `json:"airline"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	ETA         time.Time `json:"eta"`
	Status      string    `json:"status"`
}

type GuestResponse struct {
	GuestID          int64         `json:"guest_id"`
	Name             string        `json:"name"`
	Phone            string        `json:"phone,omitempty"`
	FinalDestination string        `json:"final_destination"`
	FinalETA         *time.Time    `json:"final_eta"`
	CarID            *int          `json:"car_id"`
	Legs             []LegResponse `json:"legs"`
}

type ListGuestsResponse struct {
	Guests []GuestResponse `json:"guests"`
}

type ImportRowPayload struct {
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	Flight      string `json:"flight"`
	Airline     string `json:"airline"`
	Origin      string `json:"origin"`
	Destination string `json:"destination,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

type ImportGuestsRequest struct {
	Rows []ImportRowPayload `json:"rows"`
}

type ImportGuestsResponse struct {
	Imported int `json:"imported"`
}
