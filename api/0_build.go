package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	"github.com/fulldump/box/boxopenapi"

	"github.com/fulldump/datagrid/api/apigridv1"
	"github.com/fulldump/datagrid/service"
)

func Build(s service.Servicer, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
		injectServicer(s),
	)

	apigridv1.BuildV1Grid(v1)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}))

	spec := boxopenapi.Spec(b)
	spec.Info.Title = "DataGrid"
	spec.Info.Description = "An in-memory employee grid with a filtered and sorted view."
	spec.Info.Contact = &boxopenapi.Contact{
		Url: "https://github.com/fulldump/datagrid/issues/new",
	}
	b.Handle("GET", "/openapi.json", func(r *http.Request) any {

		spec.Servers = []boxopenapi.Server{
			{
				Url: "https://" + r.Host,
			},
			{
				Url: "http://" + r.Host,
			},
		}

		return spec
	})

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(apigridv1.SetServicer(ctx, s))
		}
	}
}
