package services

// Principal is the resolved identity driving a request: a registered user or
// an anonymous guest, never both.
type Principal struct {
	UserID     string
	GuestToken string
}

func (p Principal) IsGuest() bool { return p.UserID == "" }

func UserPrincipal(userID string) Principal { return Principal{UserID: userID} }

func GuestPrincipal(token string) Principal { return Principal{GuestToken: token} }
