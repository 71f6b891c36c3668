package graph

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"

	"github.com/camilacod/DataVizVastProject/errors"
	grapherr "github.com/camilacod/DataVizVastProject/graph/error"
	"github.com/camilacod/DataVizVastProject/logger"
)

//go:embed schema.json
var nodeLinkSchema string

var (
	compiledSchema     *jsonschema.Schema
	compiledSchemaErr  error
	compiledSchemaOnce sync.Once
)

// MissingNodePolicy decides what happens when an edge names an undeclared node
type MissingNodePolicy string

const (
	// MissingNodesStrict rejects the document with a referential integrity error
	MissingNodesStrict MissingNodePolicy = "strict"

	// MissingNodesCreate silently adds an attribute-less node
	MissingNodesCreate MissingNodePolicy = "create"
)

// LoadOptions configures decoding
type LoadOptions struct {
	MissingNodes MissingNodePolicy // default: strict
	Logger       *zap.SugaredLogger
}

func (o LoadOptions) logger() *zap.SugaredLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logger.ComponentLogger("graph.loader")
}

// schema returns the compiled node-link schema
func schema() (*jsonschema.Schema, error) {
	compiledSchemaOnce.Do(func() {
		compiledSchema, compiledSchemaErr = jsonschema.CompileString("schema.json", nodeLinkSchema)
	})
	return compiledSchema, compiledSchemaErr
}

// LoadFile reads and decodes a node-link JSON document from disk.
// Every failure is a *grapherror.GraphError carrying the load stage and path.
func LoadFile(path string, opts LoadOptions) (*Graph, error) {
	start := time.Now()
	log := opts.logger()

	f, err := os.Open(path)
	if err != nil {
		return nil, grapherr.New(grapherr.CategoryParse, err, "Cannot open the input graph file").
			WithSubcategory(grapherr.SubcategoryParseOpen).
			WithStage(grapherr.StageLoad).
			WithPath(path)
	}
	defer f.Close()

	g, err := Decode(f, opts)
	if err != nil {
		if ge, ok := grapherr.As(err); ok {
			return nil, ge.WithPath(path)
		}
		return nil, err
	}

	log.Infow("Loaded graph",
		logger.FieldPath, path,
		logger.FieldNodes, len(g.nodes),
		logger.FieldEdges, len(g.edges),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return g, nil
}

// Decode parses a node-link document, validates its shape and builds the graph
func Decode(r io.Reader, opts LoadOptions) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, grapherr.New(grapherr.CategoryParse, err, "Cannot read the input graph").
			WithSubcategory(grapherr.SubcategoryParseOpen).
			WithStage(grapherr.StageLoad)
	}

	doc, err := decodeJSON(data)
	if err != nil {
		return nil, grapherr.New(grapherr.CategoryParse, err, "Input graph is not valid JSON").
			WithSubcategory(grapherr.SubcategoryParseSyntax).
			WithStage(grapherr.StageLoad)
	}

	sch, err := schema()
	if err != nil {
		return nil, grapherr.New(grapherr.CategoryInternal, err, "Node-link schema failed to compile").
			WithStage(grapherr.StageLoad)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, grapherr.New(grapherr.CategoryParse, errors.Wrap(err, "not a node-link graph"),
			"Input graph does not follow the node-link format").
			WithSubcategory(grapherr.SubcategoryParseSchema).
			WithStage(grapherr.StageLoad)
	}

	return buildFromDocument(doc.(map[string]interface{}), opts)
}

// decodeJSON decodes exactly one JSON value, keeping numbers as json.Number
func decodeJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, errors.Wrapf(err, "at byte offset %d", syntaxErr.Offset)
		}
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after the top-level JSON value")
	}
	return doc, nil
}
