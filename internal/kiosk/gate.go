package kiosk

// PinReader yields the currently stored admin PIN.
type PinReader interface {
    AdminPin() string
}

// Gate is the admin PIN check. The PIN is read fresh from the settings
// store on every attempt so a PIN change takes effect immediately. There is
// no lockout and no attempt counting: this is a kiosk convenience gate, not
// a security boundary.
type Gate struct {
    Pins PinReader
}

func (g *Gate) Check(pin string) bool {
    return pin == g.Pins.AdminPin()
}
