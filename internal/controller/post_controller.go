package controller

import (
	"io"

	"educonnect-be/internal/dto"
	"educonnect-be/internal/pkg/apperror"
	"educonnect-be/internal/pkg/serverutils"
	"educonnect-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPostController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	ListPosts(ctx *fiber.Ctx) error
	CreatePost(ctx *fiber.Ctx) error
	ToggleLike(ctx *fiber.Ctx) error
	ListComments(ctx *fiber.Ctx) error
	AddComment(ctx *fiber.Ctx) error
}

type postController struct {
	service service.IPostService
}

func NewPostController(service service.IPostService) IPostController {
	return &postController{service: service}
}

func (c *postController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/posts", authMiddleware)
	h.Get("", c.ListPosts)
	h.Post("/create", c.CreatePost)
	h.Post("/:id/like", c.ToggleLike)
	h.Get("/:id/comments", c.ListComments)
	h.Post("/:id/comments", c.AddComment)
}

func postIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.NotFound("Post not found")
	}
	return id, nil
}

func (c *postController) ListPosts(ctx *fiber.Ctx) error {
	viewerId := serverutils.UserIdFromLocals(ctx)

	posts, err := c.service.ListPosts(ctx.Context(), viewerId, ctx.QueryInt("limit"), ctx.QueryInt("offset"))
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"posts":   posts,
	})
}

// CreatePost accepts multipart form data: description and link as form
// values, the optional image as the `image` file field.
func (c *postController) CreatePost(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	req := dto.CreatePostRequest{
		Description: ctx.FormValue("description"),
		Link:        ctx.FormValue("link"),
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	var image *service.PostImage
	if fileHeader, err := ctx.FormFile("image"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return apperror.InvalidInput("Could not read uploaded image")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return apperror.InvalidInput("Could not read uploaded image")
		}
		image = &service.PostImage{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        data,
		}
	}

	post, err := c.service.CreatePost(ctx.Context(), userId, &req, image)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"post":    post,
	})
}

func (c *postController) ToggleLike(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)
	postId, err := postIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ToggleLike(ctx.Context(), userId, postId)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"likes":   res.Likes,
		"isLiked": res.IsLiked,
	})
}

func (c *postController) ListComments(ctx *fiber.Ctx) error {
	postId, err := postIdParam(ctx)
	if err != nil {
		return err
	}

	comments, err := c.service.ListComments(ctx.Context(), postId, ctx.QueryInt("limit"), ctx.QueryInt("offset"))
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success":  true,
		"comments": comments,
	})
}

func (c *postController) AddComment(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)
	postId, err := postIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.AddCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("Invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	comment, err := c.service.AddComment(ctx.Context(), userId, postId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"comment": comment,
	})
}
