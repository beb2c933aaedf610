package file

import "github.com/traceio/segy/internal/options"

// Option configures a Handle at open time, in the same functional-option
// idiom the rest of this module uses for multi-value configuration.
type Option = options.Option[*Handle]

// WithTryMmap opts a freshly opened Handle into mmap mode. Per this
// module's mmap error policy, a platform or filesystem that can't support
// the mapping is not a fatal error here: the handle silently stays in
// stream mode, which remains fully functional.
func WithTryMmap() Option {
	return options.NoError[*Handle](func(h *Handle) {
		_ = h.TryMmap()
	})
}

// OpenWithOptions is Open followed by applying opts to the result.
func OpenWithOptions(path, mode string, opts ...Option) (*Handle, error) {
	h, err := Open(path, mode)
	if err != nil {
		return nil, err
	}

	if err := options.Apply(h, opts...); err != nil {
		h.Close()

		return nil, err
	}

	return h, nil
}
