// Package openapi derives maskable field descriptors from the request bodies
// of an OpenAPI 3 document. Masks can be declared per property with the
// x-input-mask extension, either as a pattern string:
//
//	phone:
//	  type: string
//	  x-input-mask: "[1 ](000) 000-0000"
//
// or as an object mirroring the mask configuration:
//
//	birthday:
//	  type: string
//	  x-input-mask:
//	    mask: Date
//	    datePattern: mm-dd-yyyy
//
// Properties without the extension still carry their type, format and
// maxLength so fieldmask matchers can pick a mask.
package openapi
