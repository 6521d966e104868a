package observability

type Metrics interface {
	IncCacheHit(tier string)
	IncCacheMiss(tier string)
	IncUpload()
	IncPatch()
	IncSkipped()
	IncLookupFailure()
}

type Noop struct{}

func (Noop) IncCacheHit(string)  {}
func (Noop) IncCacheMiss(string) {}
func (Noop) IncUpload()          {}
func (Noop) IncPatch()           {}
func (Noop) IncSkipped()         {}
func (Noop) IncLookupFailure()   {}
