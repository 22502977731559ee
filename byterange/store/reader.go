package store

import (
	"context"
	"io"
	"log/slog"
	"math"

	"github.com/kapetan-io/tackle/set"
	"github.com/pkg/errors"
	"github.com/thanos-io/objstore"

	"github.com/slatedb/byterange-go/byterange"
)

var (
	ErrNotFound      = errors.New("object not found")
	ErrRangeTooLarge = errors.New("range exceeds the addressable object size")
)

// Part is the content of one resolved range.
type Part struct {
	Range byterange.ByteRange
	Data  []byte
}

// Resolution is a Range header evaluated against the current size of an object.
type Resolution struct {
	Name   string
	Size   uint64
	Report byterange.Report
}

// Partial reports whether the object should be served as partial content.
func (r Resolution) Partial() bool {
	return len(r.Report.Ranges) > 0
}

type Config struct {
	// Parser used to evaluate headers. A parser with default options is
	// created when nil.
	Parser *byterange.Parser
	Log    *slog.Logger
}

// Reader serves byte ranges of objects held in a bucket.
type Reader struct {
	bucket objstore.BucketReader
	parser *byterange.Parser
	log    *slog.Logger

	// ownsParser is set when the parser was created by NewReader.
	ownsParser bool
}

func NewReader(bucket objstore.BucketReader, conf Config) (*Reader, error) {
	set.Default(&conf.Log, slog.Default())
	var owns bool
	if conf.Parser == nil {
		p, err := byterange.NewParser(byterange.Options{Log: conf.Log})
		if err != nil {
			return nil, errors.Wrap(err, "while creating range parser")
		}
		conf.Parser = p
		owns = true
	}
	return &Reader{
		bucket:     bucket,
		parser:     conf.Parser,
		log:        conf.Log,
		ownsParser: owns,
	}, nil
}

// Close releases the parser if NewReader created it. A parser passed in
// Config stays open and remains the caller's to close.
func (r *Reader) Close() {
	if r.ownsParser {
		r.parser.Close()
		r.ownsParser = false
	}
}

// Size returns the size of the named object.
func (r *Reader) Size(ctx context.Context, name string) (uint64, error) {
	attrs, err := r.bucket.Attributes(ctx, name)
	if err != nil {
		return 0, r.wrap(err, "during bucket attributes of %q", name)
	}
	if attrs.Size < 0 {
		return 0, errors.Errorf("object %q reports negative size %d", name, attrs.Size)
	}
	return uint64(attrs.Size), nil
}

// Resolve evaluates header against the named object.
func (r *Reader) Resolve(ctx context.Context, name string, header string) (Resolution, error) {
	size, err := r.Size(ctx, name)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{
		Name:   name,
		Size:   size,
		Report: r.parser.Inspect(header, size),
	}, nil
}

// ReadRanges reads every range the header resolves to, in header order.
// An empty result means the header does not apply and the whole object
// should be served.
func (r *Reader) ReadRanges(ctx context.Context, name string, header string) ([]Part, error) {
	res, err := r.Resolve(ctx, name, header)
	if err != nil {
		return nil, err
	}

	parts := make([]Part, 0, len(res.Report.Ranges))
	for _, rng := range res.Report.Ranges {
		data, err := r.ReadRange(ctx, name, rng)
		if err != nil {
			return nil, err
		}
		parts = append(parts, Part{Range: rng, Data: data})
	}
	r.log.Debug("read ranges", "object", name, "size", res.Size, "parts", len(parts))
	return parts, nil
}

// CopyRanges writes every range the header resolves to into w, in header
// order, without holding a whole range in memory. The returned Resolution
// has no ranges when the header does not apply; nothing is written then.
func (r *Reader) CopyRanges(ctx context.Context, w io.Writer, name string, header string) (Resolution, error) {
	res, err := r.Resolve(ctx, name, header)
	if err != nil {
		return Resolution{}, err
	}

	for _, rng := range res.Report.Ranges {
		if err := r.copyRange(ctx, w, name, rng); err != nil {
			return Resolution{}, err
		}
	}
	r.log.Debug("copied ranges", "object", name, "size", res.Size, "parts", len(res.Report.Ranges))
	return res, nil
}

func (r *Reader) copyRange(ctx context.Context, w io.Writer, name string, rng byterange.ByteRange) error {
	rc, err := r.OpenRange(ctx, name, rng)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	n, err := io.Copy(w, rc)
	if err != nil {
		return errors.Wrapf(err, "while copying range %s of %q", rng, name)
	}
	if uint64(n) != rng.Length {
		return errors.Wrapf(io.ErrUnexpectedEOF, "while copying range %s of %q: got %d bytes", rng, name, n)
	}
	return nil
}

// ReadRange reads exactly rng from the named object.
func (r *Reader) ReadRange(ctx context.Context, name string, rng byterange.ByteRange) ([]byte, error) {
	rc, err := r.OpenRange(ctx, name, rng)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	data := make([]byte, rng.Length)
	if _, err := io.ReadFull(rc, data); err != nil {
		return nil, errors.Wrapf(err, "while reading range %s of %q", rng, name)
	}
	return data, nil
}

// OpenRange returns a reader over rng of the named object. The caller must
// close it.
func (r *Reader) OpenRange(ctx context.Context, name string, rng byterange.ByteRange) (io.ReadCloser, error) {
	if rng.Offset > math.MaxInt64 || rng.Length > math.MaxInt64-rng.Offset {
		return nil, errors.Wrapf(ErrRangeTooLarge, "range %s of %q", rng, name)
	}
	rc, err := r.bucket.GetRange(ctx, name, int64(rng.Offset), int64(rng.Length))
	if err != nil {
		return nil, r.wrap(err, "during bucket get range %s of %q", rng, name)
	}
	return rc, nil
}

func (r *Reader) wrap(err error, format string, args ...any) error {
	if r.bucket.IsObjNotFoundErr(err) {
		return errors.Wrapf(ErrNotFound, format, args...)
	}
	return errors.Wrapf(err, format, args...)
}
