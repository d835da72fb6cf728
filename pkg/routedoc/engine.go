package routedoc

import "strings"

// Framework identifies the shape of a routing structure
type Framework string

const (
	FrameworkExpress Framework = "express"
	FrameworkFastify Framework = "fastify"
	FrameworkKoa     Framework = "koa"
)

// SupportedFrameworks returns the accepted framework identifiers
func SupportedFrameworks() []Framework {
	return []Framework{FrameworkExpress, FrameworkFastify, FrameworkKoa}
}

// ParseFramework matches name case-insensitively against the supported
// identifiers
func ParseFramework(name string) (Framework, error) {
	switch Framework(strings.ToLower(name)) {
	case FrameworkExpress:
		return FrameworkExpress, nil
	case FrameworkFastify:
		return FrameworkFastify, nil
	case FrameworkKoa:
		return FrameworkKoa, nil
	default:
		return "", &UnsupportedFrameworkError{Framework: name}
	}
}

// ExtractRoutes normalizes the routing structure of app according to
// framework. app must be the structure for that framework:
//
//	express -> *ExpressApp
//	fastify -> *FastifyInstance
//	koa     -> *KoaRouter
//
// An unknown framework fails with *UnsupportedFrameworkError; a structure of
// the wrong shape fails with *StructureError. No routes are returned on
// failure.
func ExtractRoutes(framework string, app any) ([]RouteRecord, error) {
	fw, err := ParseFramework(framework)
	if err != nil {
		return nil, err
	}

	switch fw {
	case FrameworkExpress:
		switch a := app.(type) {
		case *ExpressApp:
			return ExtractExpressRoutes(a)
		case ExpressApp:
			return ExtractExpressRoutes(&a)
		}
	case FrameworkFastify:
		switch a := app.(type) {
		case *FastifyInstance:
			return ExtractFastifyRoutes(a)
		case FastifyInstance:
			return ExtractFastifyRoutes(&a)
		}
	case FrameworkKoa:
		switch a := app.(type) {
		case *KoaRouter:
			return ExtractKoaRoutes(a)
		case KoaRouter:
			return ExtractKoaRoutes(&a)
		}
	}

	return nil, structureErrorf(fw, "unexpected application type %T", app)
}
