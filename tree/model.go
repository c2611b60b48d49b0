package tree

import (
	"os"

	treelearnErrors "github.com/YuminosukeSato/treelearn/pkg/errors"
	"github.com/YuminosukeSato/treelearn/pkg/log"
)

// Sink is the external collaborator that persists a serialized tree. A Put
// succeeds or fails as one atomic outcome from the model's perspective; any
// retry policy belongs to the sink or its caller, never to the model.
type Sink interface {
	Put(destination string, data []byte) error
}

// FileSink writes serialized trees to local files, created readable and
// writable by the owner only.
type FileSink struct{}

// Put implements Sink.
func (FileSink) Put(destination string, data []byte) error {
	if err := os.WriteFile(destination, data, 0o600); err != nil {
		return treelearnErrors.Wrap(err, "treelearn: FileSink.Put")
	}
	return nil
}

// Model owns a training dataset, its attribute names, and the single tree
// grown from them at construction time. The tree is built exactly once and
// never mutated afterward; there is no re-training operation.
type Model struct {
	dataset Dataset
	names   []string
	root    Node
	sink    Sink
	logger  log.Logger
}

// ModelOption configures a Model before its tree is grown.
type ModelOption func(*Model)

// WithSink replaces the default file-based persistence sink.
func WithSink(s Sink) ModelOption {
	return func(m *Model) {
		m.sink = s
	}
}

// WithLogger replaces the model's default named logger.
func WithLogger(logger log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = logger
	}
}

// NewModel validates the training input, grows the decision tree, and
// returns the finished model. It fails before any recursion on an empty
// dataset, ragged arity, or a name list that does not match the attribute
// columns. The dataset and name list are copied, so the caller's slices
// stay untouched no matter how the build proceeds.
func NewModel(ds Dataset, names []string, opts ...ModelOption) (*Model, error) {
	m := &Model{
		sink:   FileSink{},
		logger: log.GetLoggerWithName("tree.model"),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := validateTrainingInput("tree.NewModel", ds, names); err != nil {
		return nil, err
	}

	m.dataset = make(Dataset, len(ds))
	for i, ex := range ds {
		m.dataset[i] = append(Example(nil), ex...)
	}
	m.names = append([]string(nil), names...)

	root, err := Grow(m.dataset, m.names)
	if err != nil {
		return nil, err
	}
	m.root = root

	m.logger.Info("tree grown",
		log.SamplesKey, len(m.dataset),
		log.FeaturesKey, len(m.names),
		log.TreeLeavesKey, NumLeaves(root),
		log.TreeDepthKey, Depth(root),
	)
	return m, nil
}

// Tree returns the immutable root of the grown tree.
func (m *Model) Tree() Node {
	return m.root
}

// AttributeNames returns a copy of the training schema's attribute names.
func (m *Model) AttributeNames() []string {
	return append([]string(nil), m.names...)
}

// Classify predicts a label for the query against the owned tree. It is
// the stateful twin of the package-level Classify, which works against any
// previously obtained tree, including one loaded back from storage.
func (m *Model) Classify(names []string, query Example) (Value, error) {
	return Classify(m.root, names, query)
}

// StoreTree serializes the tree and hands the bytes to the model's sink.
// A failed write surfaces as a persist-kind model error; the in-memory tree
// stays valid and usable regardless of the outcome.
func (m *Model) StoreTree(destination string) error {
	data, err := MarshalTree(m.root)
	if err != nil {
		return treelearnErrors.NewModelError("Model.StoreTree", "persist", err)
	}
	if err := m.sink.Put(destination, data); err != nil {
		return treelearnErrors.NewModelError("Model.StoreTree", "persist", err)
	}
	m.logger.Info("tree stored", "destination", destination)
	return nil
}
