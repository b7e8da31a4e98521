package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is the canonical shape every project source is normalized into.
type Project struct {
	ID           string   `json:"_id,omitempty"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
	GithubURL    string   `json:"github_url"`
	LiveURL      string   `json:"live_url"`
}

// ProjectDocument is a record of the projects collection as written by the API.
// Technologies is kept as received (list or comma string); reads normalize it.
type ProjectDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        any                `bson:"title" json:"title"`
	Category     any                `bson:"category" json:"category"`
	Description  any                `bson:"description" json:"description"`
	Technologies any                `bson:"technologies" json:"technologies"`
	Image        any                `bson:"image" json:"image"`
	GithubURL    any                `bson:"github_url" json:"github_url"`
	LiveURL      any                `bson:"live_url" json:"live_url"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ProjectFields are the keys a client may set on create or update.
var ProjectFields = []string{
	"title",
	"category",
	"description",
	"technologies",
	"image",
	"github_url",
	"live_url",
}

// RequiredProjectFields must be present and truthy on create, checked in this order.
var RequiredProjectFields = []string{"title", "category", "description", "technologies"}

const DefaultProjectImage = "/static/images/project-placeholder.jpg"
