package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "School Records",
        "description": "Student, instructor, faculty and course records managed through HTML forms.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Dashboard",
            "description": "Aggregate landing page"
        },
        {
            "name": "Health",
            "description": "Probes and metrics"
        },
        {
            "name": "Faculties",
            "description": "Faculty records"
        },
        {
            "name": "Students",
            "description": "Student records"
        },
        {
            "name": "Instructors",
            "description": "Instructor records"
        },
        {
            "name": "Courses",
            "description": "Course records"
        }
    ],
    "paths": {
        "/": {
            "get": {
                "tags": [
                    "Dashboard"
                ],
                "summary": "Overview of every record with counts",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/health": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Ready",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Store unavailable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/faculties": {
            "get": {
                "tags": [
                    "Faculties"
                ],
                "summary": "List faculties",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/add-faculty": {
            "get": {
                "tags": [
                    "Faculties"
                ],
                "summary": "Show the faculty creation form",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "Faculties"
                ],
                "summary": "Create faculty",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "name",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Stored, redirect to /faculties"
                    },
                    "422": {
                        "description": "Form rejected and re-rendered"
                    },
                    "409": {
                        "description": "Conflicts with stored records"
                    }
                }
            }
        },
        "/edit-faculty/{id}": {
            "get": {
                "tags": [
                    "Faculties"
                ],
                "summary": "Show the faculty edit form",
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Unknown faculty"
                    }
                }
            },
            "post": {
                "tags": [
                    "Faculties"
                ],
                "summary": "Update faculty; absent fields keep their stored value",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "name",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Stored, redirect to /faculties"
                    },
                    "404": {
                        "description": "Unknown faculty"
                    },
                    "422": {
                        "description": "Form rejected and re-rendered"
                    },
                    "409": {
                        "description": "Conflicts with stored records"
                    }
                }
            }
        },
        "/delete-faculty": {
            "get": {
                "tags": [
                    "Faculties"
                ],
                "summary": "Delete faculty",
                "parameters": [
                    {
                        "name": "id",
                        "in": "query",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Deleted, redirect to /faculties"
                    },
                    "404": {
                        "description": "Unknown faculty"
                    },
                    "409": {
                        "description": "Still referenced by other records"
                    }
                }
            },
            "post": {
                "tags": [
                    "Faculties"
                ],
                "summary": "Delete faculty",
                "parameters": [
                    {
                        "name": "id",
                        "in": "query",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Deleted, redirect to /faculties"
                    },
                    "404": {
                        "description": "Unknown faculty"
                    },
                    "409": {
                        "description": "Still referenced by other records"
                    }
                }
            }
        },
        "/students": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "List students",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/add-student": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "Show the student creation form",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "Students"
                ],
                "summary": "Create student",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "name",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "email",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "date_of_birth",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "gender",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "faculty_id",
                        "in": "formData",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "gpa",
                        "in": "formData",
                        "type": "number",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Stored, redirect to /students"
                    },
                    "422": {
                        "description": "Form rejected and re-rendered"
                    },
                    "409": {
                        "description": "Conflicts with stored records"
                    }
                }
            }
        },
        "/edit-student/{id}": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "Show the student edit form",
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Unknown student"
                    }
                }
            },
            "post": {
                "tags": [
                    "Students"
                ],
                "summary": "Update student; absent fields keep their stored value",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "name",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "email",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "date_of_birth",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "gender",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "faculty_id",
                        "in": "formData",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "gpa",
                        "in": "formData",
                        "type": "number",
                        "required": false
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Stored, redirect to /students"
                    },
                    "404": {
                        "description": "Unknown student"
                    },
                    "422": {
                        "description": "Form rejected and re-rendered"
                    },
                    "409": {
                        "description": "Conflicts with stored records"
                    }
                }
            }
        },
        "/delete-student": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "Delete student",
                "parameters": [
                    {
                        "name": "id",
                        "in": "query",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Deleted, redirect to /students"
                    },
                    "404": {
                        "description": "Unknown student"
                    }
                }
            },
            "post": {
                "tags": [
                    "Students"
                ],
                "summary": "Delete student",
                "parameters": [
                    {
                        "name": "id",
                        "in": "query",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Deleted, redirect to /students"
                    },
                    "404": {
                        "description": "Unknown student"
                    }
                }
            }
        },
        "/instructors": {
            "get": {
                "tags": [
                    "Instructors"
                ],
                "summary": "List instructors",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/add-instructor": {
            "get": {
                "tags": [
                    "Instructors"
                ],
                "summary": "Show the instructor creation form",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "Instructors"
                ],
                "summary": "Create instructor",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "name",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "email",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "date_of_birth",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "gender",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "faculty_id",
                        "in": "formData",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "salary",
                        "in": "formData",
                        "type": "number",
                        "required": true
                    },
                    {
                        "name": "start_date",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Stored, redirect to /instructors"
                    },
                    "422": {
                        "description": "Form rejected and re-rendered"
                    },
                    "409": {
                        "description": "Conflicts with stored records"
                    }
                }
            }
        },
        "/edit-instructor/{id}": {
            "get": {
                "tags": [
                    "Instructors"
                ],
                "summary": "Show the instructor edit form",
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Unknown instructor"
                    }
                }
            },
            "post": {
                "tags": [
                    "Instructors"
                ],
                "summary": "Update instructor; absent fields keep their stored value",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "name",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "email",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "date_of_birth",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "gender",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "faculty_id",
                        "in": "formData",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "salary",
                        "in": "formData",
                        "type": "number",
                        "required": false
                    },
                    {
                        "name": "start_date",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Stored, redirect to /instructors"
                    },
                    "404": {
                        "description": "Unknown instructor"
                    },
                    "422": {
                        "description": "Form rejected and re-rendered"
                    },
                    "409": {
                        "description": "Conflicts with stored records"
                    }
                }
            }
        },
        "/delete-instructor": {
            "get": {
                "tags": [
                    "Instructors"
                ],
                "summary": "Delete instructor",
                "parameters": [
                    {
                        "name": "id",
                        "in": "query",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Deleted, redirect to /instructors"
                    },
                    "404": {
                        "description": "Unknown instructor"
                    },
                    "409": {
                        "description": "Still referenced by other records"
                    }
                }
            },
            "post": {
                "tags": [
                    "Instructors"
                ],
                "summary": "Delete instructor",
                "parameters": [
                    {
                        "name": "id",
                        "in": "query",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Deleted, redirect to /instructors"
                    },
                    "404": {
                        "description": "Unknown instructor"
                    },
                    "409": {
                        "description": "Still referenced by other records"
                    }
                }
            }
        },
        "/courses": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "List courses",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/add-course": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "Show the course creation form",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "Create course",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "name",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "start_time",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "end_time",
                        "in": "formData",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "credit",
                        "in": "formData",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "duration",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "description",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "faculty_id",
                        "in": "formData",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "instructor_id",
                        "in": "formData",
                        "type": "integer",
                        "required": false
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Stored, redirect to /courses"
                    },
                    "422": {
                        "description": "Form rejected and re-rendered"
                    },
                    "409": {
                        "description": "Conflicts with stored records"
                    }
                }
            }
        },
        "/edit-course/{id}": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "Show the course edit form",
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Unknown course"
                    }
                }
            },
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "Update course; absent fields keep their stored value",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "name",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "start_time",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "end_time",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "credit",
                        "in": "formData",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "duration",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "description",
                        "in": "formData",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "faculty_id",
                        "in": "formData",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "instructor_id",
                        "in": "formData",
                        "type": "integer",
                        "required": false
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Stored, redirect to /courses"
                    },
                    "404": {
                        "description": "Unknown course"
                    },
                    "422": {
                        "description": "Form rejected and re-rendered"
                    },
                    "409": {
                        "description": "Conflicts with stored records"
                    }
                }
            }
        },
        "/delete-course": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "Delete course",
                "parameters": [
                    {
                        "name": "id",
                        "in": "query",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Deleted, redirect to /courses"
                    },
                    "404": {
                        "description": "Unknown course"
                    }
                }
            },
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "Delete course",
                "parameters": [
                    {
                        "name": "id",
                        "in": "query",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Deleted, redirect to /courses"
                    },
                    "404": {
                        "description": "Unknown course"
                    }
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
