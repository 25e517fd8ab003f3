package api

import "time"

// User is the server's representation of an account. Immutable from the
// client's perspective except via registration.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginCredentials is the login request body.
type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the account creation request body.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by a successful login. The token is opaque to
// the client; it is stored and attached verbatim as a bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Roast levels accepted by the server for Bean.RoastLevel.
const (
	RoastLight       = "Light"
	RoastMediumLight = "Medium-Light"
	RoastMedium      = "Medium"
	RoastMediumDark  = "Medium-Dark"
	RoastDark        = "Dark"
)

// RoastLevels returns the fixed roast level enumeration, in roast order.
func RoastLevels() []string {
	return []string{RoastLight, RoastMediumLight, RoastMedium, RoastMediumDark, RoastDark}
}

// Bean is a coffee-bean provenance record owned by a user.
type Bean struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	Variety    string    `json:"variety"`
	Seller     *string   `json:"seller,omitempty"`
	Roaster    *string   `json:"roaster,omitempty"`
	RoastLevel *string   `json:"roast_level,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeanCreate is the bean creation request body.
type BeanCreate struct {
	Variety    string  `json:"variety"`
	Seller     *string `json:"seller,omitempty"`
	Roaster    *string `json:"roaster,omitempty"`
	RoastLevel *string `json:"roast_level,omitempty"`
}

// BeanUpdate is the bean update request body. Only fields present in the
// payload are changed by the server.
type BeanUpdate struct {
	Variety    *string `json:"variety,omitempty"`
	Seller     *string `json:"seller,omitempty"`
	Roaster    *string `json:"roaster,omitempty"`
	RoastLevel *string `json:"roast_level,omitempty"`
}

// EspressoRecord is one logged espresso extraction, linked to a bean.
// Dose, ExtractionTime and YieldAmount are physical measurements that may be
// unknown (absent); the four rating fields are 1-10 taste scores.
type EspressoRecord struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	BeanID         int       `json:"bean_id"`
	Machine        string    `json:"machine"`
	Grinder        string    `json:"grinder"`
	GrindSize      *string   `json:"grind_size,omitempty"`
	Dose           *float64  `json:"dose,omitempty"`
	ExtractionTime *float64  `json:"extraction_time,omitempty"`
	YieldAmount    *float64  `json:"yield_amount,omitempty"`
	Rating         *int      `json:"rating,omitempty"`
	Sourness       *int      `json:"sourness,omitempty"`
	Bitterness     *int      `json:"bitterness,omitempty"`
	Sweetness      *int      `json:"sweetness,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// RecordCreate is the record creation request body. BeanID is required; the
// association is immutable after creation.
type RecordCreate struct {
	BeanID         int      `json:"bean_id"`
	Machine        string   `json:"machine"`
	Grinder        string   `json:"grinder"`
	GrindSize      *string  `json:"grind_size,omitempty"`
	Dose           *float64 `json:"dose,omitempty"`
	ExtractionTime *float64 `json:"extraction_time,omitempty"`
	YieldAmount    *float64 `json:"yield_amount,omitempty"`
	Rating         *int     `json:"rating,omitempty"`
	Sourness       *int     `json:"sourness,omitempty"`
	Bitterness     *int     `json:"bitterness,omitempty"`
	Sweetness      *int     `json:"sweetness,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// RecordUpdate is the record update request body. It deliberately has no
// bean_id field: a record never moves between beans.
type RecordUpdate struct {
	Machine        *string  `json:"machine,omitempty"`
	Grinder        *string  `json:"grinder,omitempty"`
	GrindSize      *string  `json:"grind_size,omitempty"`
	Dose           *float64 `json:"dose,omitempty"`
	ExtractionTime *float64 `json:"extraction_time,omitempty"`
	YieldAmount    *float64 `json:"yield_amount,omitempty"`
	Rating         *int     `json:"rating,omitempty"`
	Sourness       *int     `json:"sourness,omitempty"`
	Bitterness     *int     `json:"bitterness,omitempty"`
	Sweetness      *int     `json:"sweetness,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// RecordQuery holds the optional server-side filters accepted by the record
// list endpoint. Zero values are omitted from the query string.
type RecordQuery struct {
	BeanID      int
	Machine     string
	Grinder     string
	BeanVariety string
	BeanRoaster string
}

// UserSettings is the singleton per-user settings record holding default
// equipment strings used to pre-populate new-record forms.
type UserSettings struct {
	ID             int     `json:"id"`
	UserID         int     `json:"user_id"`
	DefaultMachine *string `json:"default_machine,omitempty"`
	DefaultGrinder *string `json:"default_grinder,omitempty"`
}

// UserSettingsUpdate is the settings update request body.
type UserSettingsUpdate struct {
	DefaultMachine *string `json:"default_machine,omitempty"`
	DefaultGrinder *string `json:"default_grinder,omitempty"`
}
