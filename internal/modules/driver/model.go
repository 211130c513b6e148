// README: Driver profile fields the dispatch engine cares about.
package driver

import "mishwar/internal/types"

type Driver struct {
	ID    types.ID
	Name  string
	Phone string
	// AcceptsCash gates acceptance of cash-paid trips.
	AcceptsCash bool
	Active      bool
}
