package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hasanackl/YemekTarifiSitesi/internal/auth"
	"github.com/hasanackl/YemekTarifiSitesi/internal/mocks"
	"github.com/hasanackl/YemekTarifiSitesi/internal/models"
	"github.com/hasanackl/YemekTarifiSitesi/internal/policy"
	"github.com/rs/zerolog"
)

var (
	testUser      = &auth.Identity{UserID: "user-1", Username: "ayse", Roles: []string{models.RoleUser}}
	testOtherUser = &auth.Identity{UserID: "user-2", Username: "mehmet", Roles: []string{models.RoleUser}}
	testAdmin     = &auth.Identity{UserID: "admin-1", Username: "admin", Roles: []string{models.RoleUser, models.RoleAdmin}}
)

func setupRecipeService() (RecipeService, *mocks.MockRecipeRepository, *mocks.MockFavoriteRepository) {
	recipes := mocks.NewMockRecipeRepository()
	favorites := mocks.NewMockFavoriteRepository()
	svc := newRecipeService(recipes, favorites, zerolog.Nop())
	return svc, recipes, favorites
}

func seedRecipes(repo *mocks.MockRecipeRepository, recipes ...*models.Recipe) {
	for _, r := range recipes {
		repo.Create(context.Background(), r)
	}
}

func recipe(id, name, category string, prepTime int) *models.Recipe {
	return &models.Recipe{
		ID:              id,
		Name:            name,
		Description:     "desc of " + name,
		Ingredients:     "ingredients of " + name,
		Steps:           "steps",
		Category:        category,
		PreparationTime: prepTime,
	}
}

func TestSearchCategoryCaseInsensitive(t *testing.T) {
	svc, recipes, _ := setupRecipeService()
	seedRecipes(recipes,
		&models.Recipe{
			ID:              "menemen-1",
			Name:            "Menemen",
			Description:     "Domatesli, yumurtalı kahvaltılık yemek.",
			Ingredients:     "Yumurta, Domates, Biber, Tuz",
			Steps:           "1. Biberi kavur. 2. Domatesi ekle. 3. Yumurtayı kır.",
			Category:        "Kahvaltı",
			PreparationTime: 10,
		},
		recipe("kebap-1", "Adana Kebap", "Ana Yemek", 45),
	)

	for _, cat := range []string{"Kahvaltı", "kahvaltı", "  kahvaltı  "} {
		result, err := svc.Search(context.Background(), nil, models.SearchParams{Category: cat})
		if err != nil {
			t.Fatalf("Search(%q) failed: %v", cat, err)
		}
		if result.TotalCount != 1 || len(result.Items) != 1 {
			t.Fatalf("Search(%q): expected exactly one match, got %d", cat, result.TotalCount)
		}
		if result.Items[0].Name != "Menemen" {
			t.Errorf("Search(%q): expected Menemen, got %s", cat, result.Items[0].Name)
		}
	}
}

func TestSearchFreeTextIsCaseRespectingSubstring(t *testing.T) {
	svc, recipes, _ := setupRecipeService()
	seedRecipes(recipes,
		recipe("r1", "Menemen", "Kahvaltı", 10),
		recipe("r2", "Mercimek Çorbası", "Çorba", 25),
	)

	result, err := svc.Search(context.Background(), nil, models.SearchParams{Query: "Menemen"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if result.TotalCount != 1 {
		t.Errorf("Expected 1 match for 'Menemen', got %d", result.TotalCount)
	}

	// Substring match is case-respecting, not fuzzy: the lowercased term
	// matches nothing
	result, err = svc.Search(context.Background(), nil, models.SearchParams{Query: "menemen"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if result.TotalCount != 0 {
		t.Errorf("Expected 0 matches for lowercased term, got %d", result.TotalCount)
	}

	// The term also matches on ingredients
	result, err = svc.Search(context.Background(), nil, models.SearchParams{Query: "ingredients of Mercimek"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if result.TotalCount != 1 {
		t.Errorf("Expected 1 match via ingredients text, got %d", result.TotalCount)
	}
}

func TestSearchPaginationClamping(t *testing.T) {
	svc, recipes, _ := setupRecipeService()
	for i := 0; i < 25; i++ {
		seedRecipes(recipes, recipe(fmt.Sprintf("r%02d", i), fmt.Sprintf("Recipe %02d", i), "Test", i+1))
	}

	tests := []struct {
		name         string
		params       models.SearchParams
		wantPage     int
		wantPageSize int
		wantItems    int
		wantPages    int
	}{
		{"defaults", models.SearchParams{}, 1, 10, 10, 3},
		{"page below one", models.SearchParams{Page: -3}, 1, 10, 10, 3},
		{"page size below one", models.SearchParams{PageSize: 0}, 1, 10, 10, 3},
		{"page size above max", models.SearchParams{PageSize: 1000}, 1, 100, 25, 1},
		{"last partial page", models.SearchParams{Page: 3, PageSize: 10}, 3, 10, 5, 3},
		{"page past the end", models.SearchParams{Page: 99, PageSize: 10}, 99, 10, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Search(context.Background(), nil, tt.params)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if result.Page != tt.wantPage {
				t.Errorf("page: expected %d, got %d", tt.wantPage, result.Page)
			}
			if result.PageSize != tt.wantPageSize {
				t.Errorf("pageSize: expected %d, got %d", tt.wantPageSize, result.PageSize)
			}
			if len(result.Items) != tt.wantItems {
				t.Errorf("items: expected %d, got %d", tt.wantItems, len(result.Items))
			}
			if result.TotalPages != tt.wantPages {
				t.Errorf("totalPages: expected %d, got %d", tt.wantPages, result.TotalPages)
			}
			if len(result.Items) > result.PageSize {
				t.Errorf("items length %d exceeds pageSize %d", len(result.Items), result.PageSize)
			}
		})
	}
}

// A page number large enough to overflow the offset multiply must behave
// like any other page past the end: an empty page, not a panic.
func TestSearchHugePageNumber(t *testing.T) {
	svc, recipes, _ := setupRecipeService()
	for i := 0; i < 5; i++ {
		seedRecipes(recipes, recipe(fmt.Sprintf("r%02d", i), fmt.Sprintf("Recipe %02d", i), "Test", i+1))
	}

	result, err := svc.Search(context.Background(), nil, models.SearchParams{Page: 1<<57 + 1, PageSize: 100})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(result.Items) != 0 {
		t.Errorf("expected an empty page, got %d items", len(result.Items))
	}
	if result.TotalCount != 5 || result.TotalPages != 1 {
		t.Errorf("expected count=5 pages=1, got count=%d pages=%d", result.TotalCount, result.TotalPages)
	}
	if result.HasNext {
		t.Error("a page past the end must not have a next page")
	}
}

func TestSearchPageFlags(t *testing.T) {
	svc, recipes, _ := setupRecipeService()
	for i := 0; i < 15; i++ {
		seedRecipes(recipes, recipe(fmt.Sprintf("r%02d", i), fmt.Sprintf("Recipe %02d", i), "Test", i+1))
	}

	first, _ := svc.Search(context.Background(), nil, models.SearchParams{Page: 1, PageSize: 10})
	if !first.HasNext || first.HasPrevious {
		t.Errorf("page 1 of 2: expected hasNext=true hasPrevious=false, got %v/%v", first.HasNext, first.HasPrevious)
	}

	last, _ := svc.Search(context.Background(), nil, models.SearchParams{Page: 2, PageSize: 10})
	if last.HasNext || !last.HasPrevious {
		t.Errorf("page 2 of 2: expected hasNext=false hasPrevious=true, got %v/%v", last.HasNext, last.HasPrevious)
	}
}

func TestSearchEmptyResult(t *testing.T) {
	svc, recipes, _ := setupRecipeService()
	seedRecipes(recipes, recipe("r1", "Menemen", "Kahvaltı", 10))

	result, err := svc.Search(context.Background(), nil, models.SearchParams{Query: "no such recipe", Page: 3})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if result.TotalCount != 0 || result.TotalPages != 0 {
		t.Errorf("expected empty result, got count=%d pages=%d", result.TotalCount, result.TotalPages)
	}
	if len(result.Items) != 0 {
		t.Errorf("expected no items, got %d", len(result.Items))
	}
	if result.HasNext {
		t.Error("empty result must not have a next page")
	}
	if !result.HasPrevious {
		t.Error("page 3 of an empty result still has previous pages")
	}
}

func TestSearchSortByTimeDescending(t *testing.T) {
	svc, recipes, _ := setupRecipeService()
	seedRecipes(recipes,
		recipe("r1", "First", "Test", 10),
		recipe("r2", "Second", "Test", 30),
		recipe("r3", "Third", "Test", 5),
	)

	result, err := svc.Search(context.Background(), nil, models.SearchParams{SortBy: "time", SortDir: "desc"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	times := []int{}
	for _, item := range result.Items {
		times = append(times, item.PreparationTime)
	}
	want := []int{30, 10, 5}
	for i, w := range want {
		if times[i] != w {
			t.Fatalf("expected order %v, got %v", want, times)
		}
	}
}

func TestSearchSortIsStable(t *testing.T) {
	svc, recipes, _ := setupRecipeService()
	// Same preparation time; ties must keep original relative order
	seedRecipes(recipes,
		recipe("r1", "Aaa", "Test", 10),
		recipe("r2", "Ccc", "Test", 10),
		recipe("r3", "Bbb", "Test", 10),
	)

	result, err := svc.Search(context.Background(), nil, models.SearchParams{SortBy: "time", SortDir: "desc"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	wantIDs := []string{"r1", "r2", "r3"}
	for i, w := range wantIDs {
		if result.Items[i].ID != w {
			t.Fatalf("tie order broken: expected %v at %d, got %v", w, i, result.Items[i].ID)
		}
	}
}

func TestSearchSortDirDefaultsToAscending(t *testing.T) {
	svc, recipes, _ := setupRecipeService()
	seedRecipes(recipes,
		recipe("r1", "Banana Bread", "Test", 60),
		recipe("r2", "Apple Pie", "Test", 90),
	)

	// Anything that is not "desc" (case-insensitively) sorts ascending
	for _, dir := range []string{"", "asc", "ASC", "upwards"} {
		result, err := svc.Search(context.Background(), nil, models.SearchParams{SortDir: dir})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if result.Items[0].Name != "Apple Pie" {
			t.Errorf("sortDir=%q: expected ascending name order, got %s first", dir, result.Items[0].Name)
		}
	}

	result, _ := svc.Search(context.Background(), nil, models.SearchParams{SortDir: "DESC"})
	if result.Items[0].Name != "Banana Bread" {
		t.Errorf("sortDir=DESC: expected descending name order, got %s first", result.Items[0].Name)
	}
}

func TestAnonymousSeesNoFavorites(t *testing.T) {
	svc, recipes, favorites := setupRecipeService()
	seedRecipes(recipes, recipe("r1", "Menemen", "Kahvaltı", 10))

	// Another user has favorited the recipe
	favorites.Create(context.Background(), &models.FavoriteMark{UserID: "someone-else", RecipeID: "r1"})

	list, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, item := range list {
		if item.IsFavorite {
			t.Errorf("anonymous caller must see isFavorite=false, got true for %s", item.ID)
		}
	}

	result, err := svc.Search(context.Background(), nil, models.SearchParams{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	for _, item := range result.Items {
		if item.IsFavorite {
			t.Errorf("anonymous search must see isFavorite=false, got true for %s", item.ID)
		}
	}
}

func TestFavoriteAnnotationForIdentity(t *testing.T) {
	svc, recipes, favorites := setupRecipeService()
	seedRecipes(recipes,
		recipe("r1", "Menemen", "Kahvaltı", 10),
		recipe("r2", "Adana Kebap", "Ana Yemek", 45),
	)
	favorites.Create(context.Background(), &models.FavoriteMark{UserID: testUser.UserID, RecipeID: "r1"})

	result, err := svc.Search(context.Background(), testUser, models.SearchParams{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	flags := map[string]bool{}
	for _, item := range result.Items {
		flags[item.ID] = item.IsFavorite
	}
	if !flags["r1"] {
		t.Error("expected r1 to be annotated as favorite")
	}
	if flags["r2"] {
		t.Error("expected r2 not to be annotated as favorite")
	}

	got, err := svc.Get(context.Background(), testUser, "r1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.IsFavorite {
		t.Error("Get: expected isFavorite=true for the owner of the mark")
	}
}

func TestCreateRequiresAdmin(t *testing.T) {
	svc, _, _ := setupRecipeService()
	req := &models.RecipeRequest{
		Name:            "Menemen",
		Description:     "Kahvaltılık",
		Ingredients:     "Yumurta",
		Steps:           "Pişir",
		Category:        "Kahvaltı",
		PreparationTime: 10,
	}

	if _, err := svc.Create(context.Background(), testUser, req); !errors.Is(err, policy.ErrForbidden) {
		t.Errorf("non-admin create: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Create(context.Background(), nil, req); !errors.Is(err, policy.ErrUnauthenticated) {
		t.Errorf("anonymous create: expected ErrUnauthenticated, got %v", err)
	}

	created, err := svc.Create(context.Background(), testAdmin, req)
	if err != nil {
		t.Fatalf("admin create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}

	got, err := svc.Get(context.Background(), nil, created.ID)
	if err != nil {
		t.Fatalf("Get after create failed: %v", err)
	}
	if got.Name != "Menemen" {
		t.Errorf("expected created recipe to be retrievable, got %+v", got)
	}
}

func TestCreateValidatesInput(t *testing.T) {
	svc, _, _ := setupRecipeService()
	req := &models.RecipeRequest{
		Name:            "Menemen",
		Description:     "Kahvaltılık",
		Ingredients:     "Yumurta",
		Steps:           "Pişir",
		Category:        "Kahvaltı",
		PreparationTime: 2000, // out of bounds
	}

	_, err := svc.Create(context.Background(), testAdmin, req)
	var vErrs *ValidationErrors
	if !errors.As(err, &vErrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
}

func TestUpdateAndDeleteNotFound(t *testing.T) {
	svc, _, _ := setupRecipeService()
	req := &models.RecipeRequest{
		Name:            "X",
		Description:     "Y",
		Ingredients:     "Z",
		Steps:           "W",
		Category:        "C",
		PreparationTime: 5,
	}

	if err := svc.Update(context.Background(), testAdmin, "missing", req); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), testAdmin, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete missing: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), testUser, "missing"); !errors.Is(err, policy.ErrForbidden) {
		t.Errorf("non-admin delete: expected ErrForbidden before any lookup, got %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	svc, _, _ := setupRecipeService()
	if _, err := svc.Get(context.Background(), nil, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListByCategory(t *testing.T) {
	svc, recipes, _ := setupRecipeService()
	seedRecipes(recipes,
		recipe("r1", "Menemen", "Kahvaltı", 10),
		recipe("r2", "Adana Kebap", "Ana Yemek", 45),
	)

	list, err := svc.ListByCategory(context.Background(), nil, "kahvaltı")
	if err != nil {
		t.Fatalf("ListByCategory failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Menemen" {
		t.Errorf("expected only Menemen, got %+v", list)
	}
}
