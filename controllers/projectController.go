package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Kimanzi/duka-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Projects are strictly owner-scoped: every query filters by the
// authenticated user's id, so one user can never see another's projects.

func GetProjects(ctx *gin.Context, db *gorm.DB) {
	userId := ctx.GetUint("userId")

	var projects []models.Project
	if result := db.Where("user_id = ?", userId).Find(&projects); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch projects.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Projects fetched successfully.",
		"data":    projects,
	})
}

func GetProject(ctx *gin.Context, db *gorm.DB) {
	userId := ctx.GetUint("userId")
	projectId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var project models.Project
	result := db.Where("id = ? AND user_id = ?", projectId, userId).First(&project)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Project not found!")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch project.")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Project fetched successfully.",
		"data":    project,
	})
}

func CreateProject(ctx *gin.Context, db *gorm.DB) {
	userId := ctx.GetUint("userId")

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Name is required")
		return
	}

	project := models.Project{Name: input.Name, UserID: userId}
	if result := db.Create(&project); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Project cannot be created.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Project created successfully.",
		"data":    project,
	})
}

func UpdateProject(ctx *gin.Context, db *gorm.DB) {
	userId := ctx.GetUint("userId")
	projectId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Name is required")
		return
	}

	var project models.Project
	result := db.Where("id = ? AND user_id = ?", projectId, userId).First(&project)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Project not found!")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch project.")
		}
		return
	}

	if result := db.Model(&project).Update("name", input.Name); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Project cannot be updated.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Project updated successfully.",
		"data":    project,
	})
}

func DeleteProject(ctx *gin.Context, db *gorm.DB) {
	userId := ctx.GetUint("userId")
	projectId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var project models.Project
	result := db.Where("id = ? AND user_id = ?", projectId, userId).First(&project)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Project not found!")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch project.")
		}
		return
	}

	if result := db.Delete(&project); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete project.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Project deleted successfully.",
	})
}
