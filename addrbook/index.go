package addrbook

import (
	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"
)

// The book carries at most a few hundred entries, so the index is rebuilt
// in memory at load instead of being persisted and invalidated on disk.

type indexedEntry struct {
	Address string `json:"address"`
	Desc    string `json:"desc"`
}

func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = en.AnalyzerName

	defaultMapping := bleve.NewDocumentMapping()
	defaultMapping.AddFieldMappingsAt("desc", textFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", defaultMapping)
	indexMapping.TypeField = "type"
	indexMapping.DefaultAnalyzer = "en"

	return indexMapping
}

func (b *Book) buildIndex() error {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return err
	}
	b.index = index

	batch := index.NewBatch()
	b.mu.RLock()
	for addr, desc := range b.data {
		batch.Index(addr, indexedEntry{Address: addr, Desc: desc})
	}
	b.mu.RUnlock()
	return index.Batch(batch)
}

func (b *Book) indexOne(addr, desc string) error {
	return b.index.Index(addr, indexedEntry{Address: addr, Desc: desc})
}

func (b *Book) searchIndex(input string) []AddressDesc {
	matchQuery := bleve.NewMatchPhraseQuery(input)
	fuzzyQuery := bleve.NewFuzzyQuery(input)
	fuzzyQuery.Fuzziness = 1
	query := bleve.NewDisjunctionQuery(matchQuery, fuzzyQuery)
	request := bleve.NewSearchRequest(query)

	searchResults, err := b.index.Search(request)
	if err != nil {
		return nil
	}

	var results []AddressDesc
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, hit := range searchResults.Hits {
		desc, ok := b.data[hit.ID]
		if !ok {
			continue
		}
		results = append(results, AddressDesc{Address: hit.ID, Desc: desc})
	}
	return results
}
