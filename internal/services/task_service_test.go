package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/tkhs0604/task-api/internal/models"
	"github.com/tkhs0604/task-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *TaskService
}

// SetupTest runs before each test
func (suite *TaskServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.TaskAssignedUser{},
		&models.TaskAction{},
	)
	suite.Require().NoError(err)

	userRepo := repository.NewUserRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	assignedRepo := repository.NewTaskAssignedUserRepository(suite.db)
	suite.service = NewTaskService(taskRepo, assignedRepo, userRepo)
}

// TearDownTest runs after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskServiceTestSuite) createUser(email string) *models.User {
	user := &models.User{
		Name:         "User " + email,
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *TaskServiceTestSuite) createTask(title string, creatorID uint64) *models.Task {
	task := &models.Task{
		Title:         title,
		Description:   "Test Description",
		CreatedUserID: creatorID,
	}
	suite.db.Create(task)
	return task
}

func (suite *TaskServiceTestSuite) assign(taskID, userID uint64) {
	suite.db.Create(&models.TaskAssignedUser{TaskID: taskID, UserID: userID})
}

func (suite *TaskServiceTestSuite) titles(tasks []models.Task) []string {
	titles := make([]string, len(tasks))
	for i, task := range tasks {
		titles[i] = task.Title
	}
	return titles
}

func (suite *TaskServiceTestSuite) TestListUserTasks_EmptyWithoutTasks() {
	user := suite.createUser("lonely@example.com")

	tasks, err := suite.service.ListUserTasks(ListTasksInput{UserID: user.ID})

	suite.NoError(err)
	suite.NotNil(tasks)
	suite.Empty(tasks)
}

func (suite *TaskServiceTestSuite) TestListUserTasks_UnionOfCreatedAndAssigned() {
	userA := suite.createUser("a@example.com")
	userB := suite.createUser("b@example.com")

	t1 := suite.createTask("T1", userA.ID)
	t2 := suite.createTask("T2", userA.ID)
	suite.assign(t2.ID, userB.ID)

	tasksB, err := suite.service.ListUserTasks(ListTasksInput{UserID: userB.ID})
	suite.NoError(err)
	suite.ElementsMatch([]string{"T2"}, suite.titles(tasksB))

	tasksA, err := suite.service.ListUserTasks(ListTasksInput{UserID: userA.ID})
	suite.NoError(err)
	suite.ElementsMatch([]string{"T1", "T2"}, suite.titles(tasksA))

	_ = t1
}

func (suite *TaskServiceTestSuite) TestListUserTasks_ExcludesSoftDeleted() {
	user := suite.createUser("owner@example.com")
	kept := suite.createTask("kept", user.ID)
	dropped := suite.createTask("dropped", user.ID)
	suite.Require().NoError(suite.db.Delete(&models.Task{}, dropped.ID).Error)

	tasks, err := suite.service.ListUserTasks(ListTasksInput{UserID: user.ID})

	suite.NoError(err)
	suite.Len(tasks, 1)
	suite.Equal(kept.ID, tasks[0].ID)
}

func (suite *TaskServiceTestSuite) TestListUserTasks_IsDoneFilter() {
	user := suite.createUser("owner@example.com")
	done := suite.createTask("done", user.ID)
	suite.Require().NoError(suite.db.Model(done).Update("is_done", true).Error)
	suite.createTask("open", user.ID)

	isDone := true
	tasks, err := suite.service.ListUserTasks(ListTasksInput{UserID: user.ID, IsDone: &isDone})

	suite.NoError(err)
	suite.ElementsMatch([]string{"done"}, suite.titles(tasks))
}

func (suite *TaskServiceTestSuite) TestListUserTasks_IsPublicFilter() {
	user := suite.createUser("owner@example.com")
	public := suite.createTask("public", user.ID)
	suite.Require().NoError(suite.db.Model(public).Update("is_public", true).Error)
	suite.createTask("private", user.ID)

	isPublic := false
	tasks, err := suite.service.ListUserTasks(ListTasksInput{UserID: user.ID, IsPublic: &isPublic})

	suite.NoError(err)
	suite.ElementsMatch([]string{"private"}, suite.titles(tasks))
}

func (suite *TaskServiceTestSuite) TestListUserTasks_ExpiryBoundsAreInclusive() {
	user := suite.createUser("owner@example.com")
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, title := range []string{"early", "middle", "late"} {
		expiry := base.Add(time.Duration(i) * 24 * time.Hour)
		task := suite.createTask(title, user.ID)
		suite.Require().NoError(suite.db.Model(task).Update("expired_at", expiry).Error)
	}

	middle := base.Add(24 * time.Hour)
	tasks, err := suite.service.ListUserTasks(ListTasksInput{
		UserID:        user.ID,
		ExpiredAfter:  &middle,
		ExpiredBefore: &middle,
	})

	suite.NoError(err)
	suite.ElementsMatch([]string{"middle"}, suite.titles(tasks))
}

func (suite *TaskServiceTestSuite) TestListUserTasks_CreatedUserIDFilter() {
	userA := suite.createUser("a@example.com")
	userB := suite.createUser("b@example.com")

	suite.createTask("mine", userA.ID)
	shared := suite.createTask("theirs", userB.ID)
	suite.assign(shared.ID, userA.ID)

	tasks, err := suite.service.ListUserTasks(ListTasksInput{
		UserID:        userA.ID,
		CreatedUserID: &userB.ID,
	})

	suite.NoError(err)
	suite.ElementsMatch([]string{"theirs"}, suite.titles(tasks))
}

func (suite *TaskServiceTestSuite) TestListUserTasks_EmptyCreatedUserIDsImposesNoFilter() {
	user := suite.createUser("owner@example.com")
	suite.createTask("one", user.ID)
	suite.createTask("two", user.ID)

	tasks, err := suite.service.ListUserTasks(ListTasksInput{
		UserID:         user.ID,
		CreatedUserIDs: []uint64{},
	})

	suite.NoError(err)
	suite.Len(tasks, 2)
}

func (suite *TaskServiceTestSuite) TestListUserTasks_CreatedUserIDsCannotWidenAccess() {
	userA := suite.createUser("a@example.com")
	userB := suite.createUser("b@example.com")

	suite.createTask("a-task", userA.ID)
	suite.createTask("b-task", userB.ID)

	// A asks for B's tasks; authorization still restricts to A's own set.
	tasks, err := suite.service.ListUserTasks(ListTasksInput{
		UserID:         userA.ID,
		CreatedUserIDs: []uint64{userB.ID},
	})

	suite.NoError(err)
	suite.Empty(tasks)
}

func (suite *TaskServiceTestSuite) TestListUserTasks_AssignedUserIDFilter() {
	userA := suite.createUser("a@example.com")
	userB := suite.createUser("b@example.com")

	assigned := suite.createTask("assigned-to-b", userA.ID)
	suite.createTask("unassigned", userA.ID)
	suite.assign(assigned.ID, userB.ID)

	tasks, err := suite.service.ListUserTasks(ListTasksInput{
		UserID:         userA.ID,
		AssignedUserID: &userB.ID,
	})

	suite.NoError(err)
	suite.ElementsMatch([]string{"assigned-to-b"}, suite.titles(tasks))
}

func (suite *TaskServiceTestSuite) TestListUserTasks_AssignedFilterWithNoAssignmentsYieldsEmpty() {
	userA := suite.createUser("a@example.com")
	userC := suite.createUser("c@example.com")
	suite.createTask("a-task", userA.ID)

	tasks, err := suite.service.ListUserTasks(ListTasksInput{
		UserID:         userA.ID,
		AssignedUserID: &userC.ID,
	})

	suite.NoError(err)
	suite.Empty(tasks)
}

func (suite *TaskServiceTestSuite) TestListUserTasks_AssignedUserIDsFilter() {
	userA := suite.createUser("a@example.com")
	userB := suite.createUser("b@example.com")
	userC := suite.createUser("c@example.com")

	forB := suite.createTask("for-b", userA.ID)
	forC := suite.createTask("for-c", userA.ID)
	suite.createTask("for-nobody", userA.ID)
	suite.assign(forB.ID, userB.ID)
	suite.assign(forC.ID, userC.ID)

	tasks, err := suite.service.ListUserTasks(ListTasksInput{
		UserID:          userA.ID,
		AssignedUserIDs: []uint64{userB.ID, userC.ID},
	})

	suite.NoError(err)
	suite.ElementsMatch([]string{"for-b", "for-c"}, suite.titles(tasks))
}

func (suite *TaskServiceTestSuite) TestListUserTasks_SortByTitleDesc() {
	user := suite.createUser("owner@example.com")
	suite.createTask("alpha", user.ID)
	suite.createTask("charlie", user.ID)
	suite.createTask("bravo", user.ID)

	tasks, err := suite.service.ListUserTasks(ListTasksInput{
		UserID:    user.ID,
		SortBy:    "title",
		SortOrder: "desc",
	})

	suite.NoError(err)
	suite.Equal([]string{"charlie", "bravo", "alpha"}, suite.titles(tasks))
}

func (suite *TaskServiceTestSuite) TestListUserTasks_UnknownSortFallsBackToCreatedAt() {
	user := suite.createUser("owner@example.com")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, title := range []string{"first", "second", "third"} {
		task := &models.Task{
			Title:         title,
			CreatedUserID: user.ID,
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
		}
		suite.Require().NoError(suite.db.Create(task).Error)
	}

	tasks, err := suite.service.ListUserTasks(ListTasksInput{
		UserID:    user.ID,
		SortBy:    "bogus",
		SortOrder: "desc",
	})

	suite.NoError(err)
	suite.Equal([]string{"third", "second", "first"}, suite.titles(tasks))
}

func (suite *TaskServiceTestSuite) TestListUserTasks_DuplicateAssignmentsListTaskOnce() {
	userA := suite.createUser("a@example.com")
	userB := suite.createUser("b@example.com")

	task := suite.createTask("doubly-assigned", userA.ID)
	suite.assign(task.ID, userB.ID)
	suite.assign(task.ID, userB.ID)

	tasks, err := suite.service.ListUserTasks(ListTasksInput{UserID: userB.ID})

	suite.NoError(err)
	suite.Len(tasks, 1)
	// The link rows themselves are not de-duplicated.
	suite.Len(tasks[0].AssignedUsers, 2)
}

func (suite *TaskServiceTestSuite) TestListUserTasks_LoadsCreatorAndAssignees() {
	userA := suite.createUser("a@example.com")
	userB := suite.createUser("b@example.com")

	task := suite.createTask("shared", userA.ID)
	suite.assign(task.ID, userB.ID)

	tasks, err := suite.service.ListUserTasks(ListTasksInput{UserID: userA.ID})

	suite.NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal(userA.Email, tasks[0].CreatedUser.Email)
	suite.Require().Len(tasks[0].AssignedUsers, 1)
	suite.Equal(userB.Email, tasks[0].AssignedUsers[0].User.Email)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
