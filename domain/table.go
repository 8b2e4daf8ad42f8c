package domain

// Table is the name of a mongo collection
type Table string

const (
	TableListings   Table = "listings"
	TableCurrencies Table = "currencies"
	TableEvents     Table = "events"
	TableCounters   Table = "counters"
)
