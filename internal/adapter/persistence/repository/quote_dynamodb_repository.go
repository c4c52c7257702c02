package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"clearview_estimator/internal/domain/entities"
	"clearview_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesEmailIndex       = "email-index"

	// timestampLayout is fixed width so stored timestamps compare as strings.
	timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// DynamoAPI is the subset of *dynamodb.Client used by the repository.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type quoteItem struct {
	ID              string                     `dynamodbav:"id"`
	Email           string                     `dynamodbav:"email,omitempty"`
	Customer        entities.Customer          `dynamodbav:"customer"`
	House           entities.HouseProfile      `dynamodbav:"house"`
	Prices          entities.PriceTable        `dynamodbav:"prices"`
	MainService     *entities.SelectedService  `dynamodbav:"main_service,omitempty"`
	AddOns          []entities.SelectedService `dynamodbav:"add_ons"`
	Frequency       string                     `dynamodbav:"frequency"`
	DiscountPercent int                        `dynamodbav:"discount_percent"`
	TotalPrice      int64                      `dynamodbav:"total_price"`
	Status          string                     `dynamodbav:"status"`
	BookingURL      string                     `dynamodbav:"booking_url,omitempty"`
	CreatedAt       string                     `dynamodbav:"created_at"`
	UpdatedAt       string                     `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = defaultQuotesTableName
	}
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

// Update replaces the stored quote. A missing quote yields a zero value.
func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

// UpdateDraft writes the estimator selections while the quote is still a
// draft (started or in_progress) and the stored updated_at is older than
// q.UpdatedAt. Otherwise it yields a zero value, so a late write from an
// earlier change never replaces a newer one.
func (r *QuoteDynamoRepository) UpdateDraft(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	addOns, err := attributevalue.Marshal(nonNilAddOns(q.AddOns))
	if err != nil {
		return entities.Quote{}, err
	}
	var main types.AttributeValue
	if q.MainService != nil {
		if main, err = attributevalue.Marshal(q.MainService); err != nil {
			return entities.Quote{}, err
		}
	}

	return r.update(ctx, q.ID, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #add_ons = :add_ons, #frequency = :frequency, #discount_percent = :discount_percent, " +
			"#total_price = :total_price, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":add_ons":          addOns,
			":frequency":        &types.AttributeValueMemberS{Value: string(q.Frequency)},
			":discount_percent": &types.AttributeValueMemberN{Value: strconv.Itoa(q.DiscountPercent)},
			":total_price":      &types.AttributeValueMemberN{Value: strconv.FormatInt(q.TotalPrice, 10)},
			":status":           &types.AttributeValueMemberS{Value: string(q.Status)},
			":updated_at":       &types.AttributeValueMemberS{Value: formatTime(q.UpdatedAt)},
			":started":          &types.AttributeValueMemberS{Value: string(entities.QuoteStatusStarted)},
			":in_progress":      &types.AttributeValueMemberS{Value: string(entities.QuoteStatusInProgress)},
		}
		names := map[string]string{
			"#add_ons":          "add_ons",
			"#frequency":        "frequency",
			"#discount_percent": "discount_percent",
			"#total_price":      "total_price",
			"#status":           "status",
			"#updated_at":       "updated_at",
			"#main_service":     "main_service",
		}
		if main != nil {
			expr += ", #main_service = :main_service"
			vals[":main_service"] = main
		} else {
			expr += " REMOVE #main_service"
		}
		return expr, vals, names
	}, "#status IN (:started, :in_progress) AND (attribute_not_exists(#updated_at) OR #updated_at < :updated_at)")
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.Quote, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})

	items := make([]entities.Quote, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuoteItem(it))
		}
	}
	return items, nil
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
	condition string,
) (entities.Quote, error) {
	updateExpr, values, names := build()

	cond := "attribute_exists(#id)"
	if condition != "" {
		cond += " AND " + condition
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:              q.ID,
		Email:           q.Customer.Email,
		Customer:        q.Customer,
		House:           q.House,
		Prices:          q.Prices,
		MainService:     q.MainService,
		AddOns:          nonNilAddOns(q.AddOns),
		Frequency:       string(q.Frequency),
		DiscountPercent: q.DiscountPercent,
		TotalPrice:      q.TotalPrice,
		Status:          string(q.Status),
		BookingURL:      q.BookingURL,
		CreatedAt:       formatTime(q.CreatedAt),
		UpdatedAt:       formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Quote{
		ID:              it.ID,
		Customer:        it.Customer,
		House:           it.House,
		Prices:          it.Prices,
		MainService:     it.MainService,
		AddOns:          nonNilAddOns(it.AddOns),
		Frequency:       entities.Frequency(it.Frequency),
		DiscountPercent: it.DiscountPercent,
		TotalPrice:      it.TotalPrice,
		Status:          entities.QuoteStatus(it.Status),
		BookingURL:      it.BookingURL,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func nonNilAddOns(addOns []entities.SelectedService) []entities.SelectedService {
	if addOns == nil {
		return []entities.SelectedService{}
	}
	return addOns
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
