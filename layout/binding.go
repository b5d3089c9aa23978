package layout

import "fmt"

// binding is the optional association between a manager and its host.
type binding struct {
	host Host
}

func (b *binding) bind(host Host) {
	if host == nil {
		panic("layout: attach to nil host")
	}
	if b.host != nil && b.host != host {
		panic(fmt.Sprintf("layout: manager is already attached to %T; detach it first", b.host))
	}
	b.host = host
}

func (b *binding) unbind() {
	b.host = nil
}

// Host returns the bound host, or nil.
func (b *binding) Host() Host {
	return b.host
}

func (b *binding) viewport() (width, height float64) {
	if b.host == nil {
		return 0, 0
	}
	w, h := b.host.Size()
	return float64(w), float64(h)
}
