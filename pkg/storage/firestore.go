package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/levenlabs/go-lflag"
	"github.com/suryakart/suryakart/pkg/log"
	"github.com/suryakart/suryakart/pkg/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const productsCollection = "products"

// FirestoreProvider implements Database using Google Cloud Firestore.
// Each product is a document holding the JSON encoded product plus the fields
// that queries filter on.
type FirestoreProvider struct {
	client    *firestore.Client
	projectID string
	database  string
}

func configuredFirestore() *FirestoreProvider {
	projectID := lflag.String("firestore-project-id", "", "Google Cloud Project ID for Firestore")
	database := lflag.String("firestore-database", "", "Google Cloud Firestore Database")
	emulator := lflag.String("firestore-emulator", "", "Use Firestore emulator")

	f := &FirestoreProvider{}

	lflag.Do(func() {
		f.projectID = *projectID
		f.database = *database

		// set this because that's how firestore client expects it
		if *emulator != "" {
			os.Setenv("FIRESTORE_EMULATOR_HOST", *emulator)
		}
	})

	return f
}

// Validate checks if the provider is properly configured.
func (f *FirestoreProvider) Validate() error {
	if f.projectID == "" && os.Getenv("FIRESTORE_EMULATOR_HOST") != "" {
		return fmt.Errorf("firestore-project-id is required when using the emulator")
	}
	return nil
}

// Init creates the Firestore client. It must be called before any other method.
func (f *FirestoreProvider) Init(ctx context.Context) error {
	projectID := f.projectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	database := f.database
	if database == "" {
		database = firestore.DefaultDatabaseID
	}
	client, err := firestore.NewClientWithDatabase(ctx, projectID, database)
	if err != nil {
		return fmt.Errorf("failed to create firestore client (project=%s, database=%s): %w", projectID, database, err)
	}
	f.client = client
	return nil
}

// Close closes the Firestore client connection.
func (f *FirestoreProvider) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func (f *FirestoreProvider) productDoc(id string) (*firestore.DocumentRef, error) {
	if id == "" {
		return nil, fmt.Errorf("product id cannot be empty")
	}
	return f.client.Collection(productsCollection).Doc(id), nil
}

func productFields(p types.Product) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal product: %w", err)
	}
	return map[string]any{
		"json":     string(b),
		"title":    p.Title,
		"category": p.Category,
		"active":   p.Active,
	}, nil
}

func decodeProduct(ctx context.Context, doc *firestore.DocumentSnapshot) (types.Product, error) {
	val, err := doc.DataAt("json")
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "product doc missing json", slog.String("productID", doc.Ref.ID))
		return types.Product{}, fmt.Errorf("product document missing 'json' field: %w", err)
	}
	jsonStr, ok := val.(string)
	if !ok {
		log.Ctx(ctx).WarnContext(ctx, "product doc json not string", slog.String("productID", doc.Ref.ID))
		return types.Product{}, fmt.Errorf("product 'json' field is not a string")
	}
	var p types.Product
	if err := json.Unmarshal([]byte(jsonStr), &p); err != nil {
		return types.Product{}, fmt.Errorf("failed to unmarshal product json: %w", err)
	}
	p.ID = doc.Ref.ID
	return p, nil
}

// GetProduct returns the product with the given id or ErrProductNotFound.
func (f *FirestoreProvider) GetProduct(ctx context.Context, id string) (types.Product, error) {
	ref, err := f.productDoc(id)
	if err != nil {
		return types.Product{}, err
	}
	doc, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.Product{}, ErrProductNotFound
		}
		return types.Product{}, fmt.Errorf("failed to fetch product doc: %w", err)
	}
	return decodeProduct(ctx, doc)
}

// ListProducts returns the products matching filter ordered by title.
func (f *FirestoreProvider) ListProducts(ctx context.Context, filter ProductFilter) ([]types.Product, error) {
	q := f.client.Collection(productsCollection).Query
	if filter.Category != "" {
		q = q.Where("category", "==", filter.Category)
	}
	if filter.ActiveOnly {
		q = q.Where("active", "==", true)
	}
	iter := q.Documents(ctx)
	defer iter.Stop()

	var products []types.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}
		p, err := decodeProduct(ctx, doc)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	sortProducts(products)
	return products, nil
}

// CreateProduct stores a new product. It fails with ErrProductExists if the id
// is taken.
func (f *FirestoreProvider) CreateProduct(ctx context.Context, product types.Product) error {
	ref, err := f.productDoc(product.ID)
	if err != nil {
		return err
	}
	fields, err := productFields(product)
	if err != nil {
		return err
	}
	if _, err := ref.Create(ctx, fields); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrProductExists
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// UpdateProduct replaces an existing product. It fails with ErrProductNotFound
// if the product does not exist.
func (f *FirestoreProvider) UpdateProduct(ctx context.Context, product types.Product) error {
	ref, err := f.productDoc(product.ID)
	if err != nil {
		return err
	}
	fields, err := productFields(product)
	if err != nil {
		return err
	}
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	if _, err := ref.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// DeleteProduct removes a product. Deleting a missing product returns
// ErrProductNotFound.
func (f *FirestoreProvider) DeleteProduct(ctx context.Context, id string) error {
	ref, err := f.productDoc(id)
	if err != nil {
		return err
	}
	if _, err := ref.Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
