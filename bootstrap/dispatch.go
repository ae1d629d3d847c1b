package bootstrap

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ronin-framework/ronin/di"
	"github.com/ronin-framework/ronin/errors"
	"github.com/ronin-framework/ronin/router"
)

// Dispatcher is the terminal request handler the framework mounts for
// requests no compiled route matches. Applications replace it by binding
// their own instance under di.Framework.Dispatcher from conf.DispatchModule.
type Dispatcher interface {
	Mount(r *router.Router)
}

// notFoundDispatcher answers unmatched requests with a JSON not-found
// body. It is the default when no conf.DispatchModule is registered.
type notFoundDispatcher struct{}

func (d *notFoundDispatcher) Mount(r *router.Router) {
	r.Engine().NoRoute(func(c *gin.Context) {
		appErr := errors.NotFound("route").WithDetail("path", c.Request.URL.Path)
		c.JSON(http.StatusNotFound, appErr.ToResponse())
	})
}

// dispatchDefaults is the framework's dispatch module, used when the
// application registers no conf.DispatchModule. Exactly one dispatch
// module is ever assembled.
type dispatchDefaults struct{}

func (dispatchDefaults) Configure(b *di.Binder) {
	b.BindEager(di.Framework.Dispatcher, func(r di.Resolver) (interface{}, error) {
		rt, err := di.Resolve[*router.Router](r, di.Framework.Router)
		if err != nil {
			return nil, err
		}
		d := &notFoundDispatcher{}
		d.Mount(rt)
		return d, nil
	})
}
