package models

type Blog struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt,omitempty"`
	Content string `json:"content,omitempty"`
	Author  string `json:"author,omitempty"`
	Image   string `json:"image,omitempty"`
	Date    string `json:"date,omitempty"`
}

func (b Blog) GetID() uint { return b.ID }
