package confluence_test

import (
	"context"
	"fmt"
	"log"

	"github.com/nucleus/confluence-go/confluence"
	"github.com/nucleus/confluence-go/cql"
)

func Example() {
	client, err := confluence.NewClient(&confluence.Config{
		BaseURL: "https://yoursite.atlassian.net/wiki/rest/api",
		Auth:    confluence.AtlassianAuth{Email: "dev@example.com", APIToken: "token"},
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	query := cql.Query{
		Clause:  cql.And(cql.Space("ENG"), cql.Type("page")),
		OrderBy: []cql.Ordering{{Field: "lastmodified", Direction: cql.Descending}},
	}

	it := client.SearchAll(ctx, &confluence.SearchDetails{
		CQL:   query.String(),
		Limit: confluence.Int(50),
	})
	defer it.Close()

	for it.Next() {
		page := it.Value()
		fmt.Println(page.ID, page.Title)
	}
	if it.Err() != nil {
		log.Fatal(it.Err())
	}
}
