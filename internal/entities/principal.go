package entities

// Principal текстовое представление идентификатора участника (caller).
type Principal string

// AnonymousPrincipal - caller без подписи.
const AnonymousPrincipal Principal = "2vxsx-fae"

func (p Principal) String() string {
	return string(p)
}

func (p Principal) IsAnonymous() bool {
	return p == AnonymousPrincipal || p == ""
}
