package lnplus

// filterBucket is one server-side range filter offered by the LN+ listing.
// The first bucket whose Min the requested minimum reaches is used.
type filterBucket[T int64 | float64] struct {
	Min   T
	Value string
}

var capacityBuckets = []filterBucket[float64]{
	{Min: 10, Value: "1000000000..100000000000"},
	{Min: 1, Value: "100000000..999999999"},
}

var channelBuckets = []filterBucket[int64]{
	{Min: 1000, Value: "1000..100000"},
	{Min: 500, Value: "500..749"},
	{Min: 250, Value: "250..499"},
	{Min: 100, Value: "100..249"},
	{Min: 50, Value: "50..99"},
}

func pick[T int64 | float64](buckets []filterBucket[T], v T) string {
	for _, b := range buckets {
		if v >= b.Min {
			return b.Value
		}
	}
	return ""
}

// capacityFilter returns the capacity bucket for a minimum capacity in BTC.
func capacityFilter(minBTC float64) string {
	return pick(capacityBuckets, minBTC)
}

// channelFilter returns the channel count bucket for a minimum channel count.
func channelFilter(minChannels int64) string {
	return pick(channelBuckets, minChannels)
}
