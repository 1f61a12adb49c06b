package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// ObjectId names an object. Ids come from the authored object catalog so a
// misspelt noun can never create a new object.
type ObjectId string

func (id ObjectId) String() string {
	return string(id)
}

// Object is the authored definition of a thing that can sit in a room or be
// carried.
type Object struct {
	Description string `json:"description"`

	// Unobtainable, when set, is the refusal shown whenever the player tries
	// to take the object, whether or not it is present.
	Unobtainable string `json:"unobtainable,omitempty"`
}

// Obtainable reports whether the player may ever pick the object up.
func (o *Object) Obtainable() bool {
	return o.Unobtainable == ""
}

// Validate satisfies storage.ValidatingSpec
func (o *Object) Validate() error {
	el := errors.NewErrorList()
	if o.Description == "" {
		el.Add(fmt.Errorf("object description is required"))
	}
	return el.Err()
}
