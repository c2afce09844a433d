package source

type SourceContainer struct {
	Service Service
	Handler *Handler
}

func NewSourceContainer(searchBaseURL string) *SourceContainer {
	fetcher := DefaultFetcher()
	searcher := NewSearcher(fetcher, searchBaseURL)
	service := NewService(fetcher, searcher)
	handler := NewHandler(service)

	return &SourceContainer{
		Service: service,
		Handler: handler,
	}
}
