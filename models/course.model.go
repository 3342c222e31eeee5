package models

import "time"

type Course struct {
	ID               uint       `json:"id"`
	Title            string     `json:"title"`
	Category         string     `json:"category"`
	Instructor       string     `json:"instructor"`
	InstructorAvatar string     `json:"instructorAvatar,omitempty"`
	Image            string     `json:"image,omitempty"`
	Badge            string     `json:"badge,omitempty"`
	Price            float64    `json:"price"`
	OldPrice         float64    `json:"oldPrice,omitempty"`
	Rating           float64    `json:"rating"`
	Grades           int        `json:"grades,omitempty"`
	Lectures         int        `json:"lectures,omitempty"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
}

func (c Course) GetID() uint { return c.ID }
