package constants

import "time"

// ToastDuration controls how long transient status messages stay visible
var ToastDuration = 5 * time.Second

// TopBarHeight is the fixed number of lines above the list
const TopBarHeight = 1

// FooterHeight is the fixed number of lines below the list
const FooterHeight = 1

// DefaultItemCount is the demo dataset size when --count is not given
const DefaultItemCount = 10000

// MaxItemCount bounds dataset growth from the resize keys
const MaxItemCount = 10_000_000
