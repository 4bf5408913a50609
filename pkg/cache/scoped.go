package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one backend without colliding, e.g. two servers pointed at the same Redis:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "cellstack:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) SceneKey(series, parallel int, mode string) string {
	return k.prefix + k.inner.SceneKey(series, parallel, mode)
}

func (k *ScopedKeyer) ArtifactKey(sceneKey string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sceneKey, opts)
}

func (k *ScopedKeyer) SchematicKey(opts SchematicKeyOpts) string {
	return k.prefix + k.inner.SchematicKey(opts)
}
