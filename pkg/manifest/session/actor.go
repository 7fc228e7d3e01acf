package session

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
)

// Actor identifies who performs an import. Every entity created by the import is attributed to it.
type Actor struct {
	CompanyID   string `json:"company_id" yaml:"company_id"`
	UserID      string `json:"user_id" yaml:"user_id"`
	HomeCountry string `json:"home_country" yaml:"home_country"` // ISO 3166-1 alpha-2 of the importing company.
}

func NewActor(companyID, userID, homeCountry string) (Actor, error) {
	a := Actor{
		CompanyID:   strings.TrimSpace(companyID),
		UserID:      strings.TrimSpace(userID),
		HomeCountry: strings.ToUpper(strings.TrimSpace(homeCountry)),
	}
	if err := a.Validate(); err != nil {
		return Actor{}, err
	}
	return a, nil
}

func (a Actor) Validate() error {
	if err := validation.ValidateStruct(&a,
		validation.Field(&a.CompanyID, validation.Required),
		validation.Field(&a.UserID, validation.Required),
		validation.Field(&a.HomeCountry, validation.Required, validation.Length(2, 2)),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}
